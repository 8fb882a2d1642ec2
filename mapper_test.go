package driveops_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"

	"github.com/Jumpaku/go-driveops"
)

func TestMapFile_OmitsUnsetFields(t *testing.T) {
	r := driveops.MapFile(&drive.File{
		Id:           "1f1Vx-AanOdkVEQoewRhUQibOiyXq_RHG",
		Name:         "report.pdf",
		MimeType:     "application/pdf",
		ModifiedTime: "2024-01-02T03:04:05.000Z",
		Size:         2048,
	})

	assert.Equal(t, []string{"id", "name", "mimeType", "modifiedTime", "size"}, driveops.RecordKeys(r))
	assert.Equal(t, "report.pdf", driveops.RecordString(r, "name"))
	size, ok := r.Get("size")
	require.True(t, ok)
	assert.Equal(t, int64(2048), size)
}

func TestMapFile_Nested(t *testing.T) {
	r := driveops.MapFile(&drive.File{
		Id:      "f1",
		Parents: []string{"root"},
		Owners: []*drive.User{
			{DisplayName: "Alice", EmailAddress: "alice@example.com", Me: true},
			nil,
		},
		Capabilities:    &drive.FileCapabilities{CanEdit: true, CanShare: true},
		ShortcutDetails: &drive.FileShortcutDetails{TargetId: "f2", TargetMimeType: "text/plain"},
		Permissions: []*drive.Permission{
			{Id: "p1", Role: "owner", Type: "user"},
		},
		ExportLinks:        map[string]string{"application/pdf": "https://example.com/export"},
		ImageMediaMetadata: &drive.FileImageMediaMetadata{Width: 640, Height: 480, Location: &drive.FileImageMediaMetadataLocation{}},
	})

	owners, ok := r.Get("owners")
	require.True(t, ok)
	require.Len(t, owners, 1)
	owner := owners.([]*driveops.Record)[0]
	assert.Equal(t, []string{"displayName", "me", "emailAddress"}, driveops.RecordKeys(owner))

	canEdit, ok := driveops.RecordGet(r, "capabilities", "canEdit")
	require.True(t, ok)
	assert.Equal(t, true, canEdit)
	_, ok = driveops.RecordGet(r, "capabilities", "canDelete")
	assert.False(t, ok)

	target, ok := driveops.RecordGet(r, "shortcutDetails", "targetId")
	require.True(t, ok)
	assert.Equal(t, "f2", target)

	role, ok := r.Get("permissions")
	require.True(t, ok)
	assert.Equal(t, "owner", driveops.RecordString(role.([]*driveops.Record)[0], "role"))

	// An all-zero nested value is dropped rather than kept as an empty record.
	_, ok = driveops.RecordGet(r, "imageMediaMetadata", "location")
	assert.False(t, ok)
	width, ok := driveops.RecordGet(r, "imageMediaMetadata", "width")
	require.True(t, ok)
	assert.Equal(t, int64(640), width)
}

func TestMapFile_Nil(t *testing.T) {
	r := driveops.MapFile(nil)
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
}

func TestMapPermission(t *testing.T) {
	tests := []struct {
		name       string
		permission *drive.Permission
		wantKeys   []string
	}{
		{
			name:       "nil",
			permission: nil,
			wantKeys:   []string{},
		},
		{
			name: "user",
			permission: &drive.Permission{
				Kind:         "drive#permission",
				Id:           "13346476095080557008",
				Type:         "user",
				EmailAddress: "alice@example.com",
				Role:         "writer",
				DisplayName:  "Alice",
			},
			wantKeys: []string{"kind", "id", "type", "emailAddress", "role", "displayName"},
		},
		{
			name: "domain with discovery",
			permission: &drive.Permission{
				Id:                 "p2",
				Type:               "domain",
				Domain:             "example.com",
				Role:               "reader",
				AllowFileDiscovery: true,
			},
			wantKeys: []string{"id", "type", "domain", "role", "allowFileDiscovery"},
		},
		{
			name: "inherited",
			permission: &drive.Permission{
				Id:   "p3",
				Role: "organizer",
				PermissionDetails: []*drive.PermissionPermissionDetails{
					{PermissionType: "member", Role: "organizer", Inherited: true, InheritedFrom: "0AF"},
				},
			},
			wantKeys: []string{"id", "role", "permissionDetails"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := driveops.MapPermission(tt.permission)
			keys := driveops.RecordKeys(r)
			if keys == nil {
				keys = []string{}
			}
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestRecord_MarshalJSONKeepsOrder(t *testing.T) {
	r := driveops.MapPermission(&drive.Permission{
		Id:           "p1",
		Type:         "user",
		EmailAddress: "alice@example.com",
		Role:         "reader",
	})

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"p1","type":"user","emailAddress":"alice@example.com","role":"reader"}`, string(data))
}

func TestRecordGet(t *testing.T) {
	r := driveops.MapFile(&drive.File{Id: "f1", Name: "a"})

	_, ok := driveops.RecordGet(r)
	assert.False(t, ok)
	_, ok = driveops.RecordGet(r, "name", "nested")
	assert.False(t, ok)
	_, ok = driveops.RecordGet(nil, "name")
	assert.False(t, ok)
	v, ok := driveops.RecordGet(r, "id")
	assert.True(t, ok)
	assert.Equal(t, "f1", v)
	assert.Equal(t, "", driveops.RecordString(nil, "id"))
	assert.Nil(t, driveops.RecordKeys(nil))
}

func TestMapFile_StringMapsBecomeSortedRecords(t *testing.T) {
	r := driveops.MapFile(&drive.File{
		ExportLinks: map[string]string{
			"text/plain":      "https://example.com/export?format=txt",
			"application/pdf": "https://example.com/export?format=pdf",
		},
		Properties: map[string]string{"b": "2", "a": "1"},
	})

	links, ok := r.Get("exportLinks")
	require.True(t, ok)
	require.IsType(t, &driveops.Record{}, links)
	assert.Equal(t, []string{"application/pdf", "text/plain"}, driveops.RecordKeys(links.(*driveops.Record)))

	pdf, ok := driveops.RecordGet(r, "exportLinks", "application/pdf")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/export?format=pdf", pdf)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"properties":{"a":"1","b":"2"},"exportLinks":{"application/pdf":"https://example.com/export?format=pdf","text/plain":"https://example.com/export?format=txt"}}`, string(data))
}

func TestMapFile_LabelFields(t *testing.T) {
	r := driveops.MapFile(&drive.File{
		LabelInfo: &drive.FileLabelInfo{Labels: []*drive.Label{{
			Id: "label-1",
			Fields: map[string]drive.LabelField{
				"priority": {Id: "priority", ValueType: "integer", Integer: []int64{3}},
				"owner":    {Id: "owner", ValueType: "user", User: []*drive.User{{EmailAddress: "alice@example.com"}}},
			},
		}}},
	})

	labels, ok := driveops.RecordGet(r, "labelInfo", "labels")
	require.True(t, ok)
	label := labels.([]*driveops.Record)[0]
	fields, ok := driveops.RecordGet(label, "fields")
	require.True(t, ok)
	assert.Equal(t, []string{"owner", "priority"}, driveops.RecordKeys(fields.(*driveops.Record)))

	priority, ok := driveops.RecordGet(label, "fields", "priority", "integer")
	require.True(t, ok)
	assert.Equal(t, []int64{3}, priority)
	users, ok := driveops.RecordGet(label, "fields", "owner", "user")
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", driveops.RecordString(users.([]*driveops.Record)[0], "emailAddress"))
}

// populate sets every exported, serialized field of v to a non-zero value.
func populate(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		v.SetString("x")
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int64:
		v.SetInt(1)
	case reflect.Float64:
		v.SetFloat(1.5)
	case reflect.Pointer:
		p := reflect.New(v.Type().Elem())
		populate(p.Elem())
		v.Set(p)
	case reflect.Slice:
		s := reflect.MakeSlice(v.Type(), 1, 1)
		populate(s.Index(0))
		v.Set(s)
	case reflect.Map:
		m := reflect.MakeMap(v.Type())
		e := reflect.New(v.Type().Elem()).Elem()
		populate(e)
		m.SetMapIndex(reflect.ValueOf("k").Convert(v.Type().Key()), e)
		v.Set(m)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if jsonName(v.Type().Field(i)) != "" {
				populate(v.Field(i))
			}
		}
	}
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// assertProjected checks that every serialized field of typ is present in got, descending into nested values.
func assertProjected(t *testing.T, typ reflect.Type, got any, path string) {
	t.Helper()
	r, ok := got.(*driveops.Record)
	require.True(t, ok, "%s: got %T, want *Record", path, got)
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := jsonName(f)
		if name == "" {
			continue
		}
		value, ok := r.Get(name)
		if !assert.True(t, ok, "%s.%s is missing", path, name) {
			continue
		}
		switch ft := f.Type; {
		case ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.Struct:
			assertProjected(t, ft.Elem(), value, path+"."+name)
		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Pointer:
			records, ok := value.([]*driveops.Record)
			require.True(t, ok, "%s.%s: got %T, want []*Record", path, name, value)
			require.Len(t, records, 1)
			assertProjected(t, ft.Elem().Elem(), records[0], path+"."+name+"[0]")
		case ft.Kind() == reflect.Map:
			entry, ok := driveops.RecordGet(r, name, "k")
			require.True(t, ok, "%s.%s.k is missing", path, name)
			if ft.Elem().Kind() == reflect.Struct {
				assertProjected(t, ft.Elem(), entry, path+"."+name+".k")
			}
		}
	}
}

func TestMapFile_ProjectsEveryField(t *testing.T) {
	var f drive.File
	populate(reflect.ValueOf(&f).Elem())

	assertProjected(t, reflect.TypeOf(f), driveops.MapFile(&f), "file")
}

func TestMapPermission_ProjectsEveryField(t *testing.T) {
	var p drive.Permission
	populate(reflect.ValueOf(&p).Elem())

	assertProjected(t, reflect.TypeOf(p), driveops.MapPermission(&p), "permission")
}

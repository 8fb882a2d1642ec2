package driveops_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"

	"github.com/Jumpaku/go-driveops"
	"github.com/Jumpaku/go-driveops/internal/drivetest"
)

func TestPermissionList(t *testing.T) {
	server := drivetest.NewServer(t)
	server.AddPermissions("file-1",
		&drive.Permission{Id: "perm-1", Type: "user", EmailAddress: "alice@example.com", Role: "owner"},
		&drive.Permission{Id: "perm-2", Type: "group", EmailAddress: "team@example.com", Role: "writer"},
		&drive.Permission{Id: "perm-3", Type: "domain", Domain: "example.com", Role: "reader", AllowFileDiscovery: true},
	)
	api := driveops.New(server.Service(t))

	permissions, err := driveops.Execute(context.Background(), api, driveops.NewPermissionListCommand("file-1"))
	require.NoError(t, err)

	require.Len(t, permissions, 3)
	assert.Equal(t, "perm-1", driveops.RecordString(permissions[0], "id"))
	assert.Equal(t, "alice@example.com", driveops.RecordString(permissions[0], "emailAddress"))
	assert.Equal(t, "owner", driveops.RecordString(permissions[0], "role"))
	assert.Equal(t, "perm-2", driveops.RecordString(permissions[1], "id"))
	assert.Equal(t, "group", driveops.RecordString(permissions[1], "type"))
	assert.Equal(t, "perm-3", driveops.RecordString(permissions[2], "id"))
	assert.Equal(t, "example.com", driveops.RecordString(permissions[2], "domain"))
	discovery, ok := permissions[2].Get("allowFileDiscovery")
	require.True(t, ok)
	assert.Equal(t, true, discovery)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, "/files/file-1/permissions", requests[0].Path)
	assert.Equal(t, "*", requests[0].Query.Get("fields"))
}

func TestPermissionList_CollectsEveryPage(t *testing.T) {
	server := drivetest.NewServer(t)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		server.AddPermissions("file-1", &drive.Permission{Id: id})
	}
	server.SetPermissionPageSize(2)
	api := driveops.New(server.Service(t))

	permissions, err := driveops.Execute(context.Background(), api, driveops.NewPermissionListCommand("file-1"))
	require.NoError(t, err)

	var ids []string
	for _, p := range permissions {
		ids = append(ids, driveops.RecordString(p, "id"))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
	assert.Len(t, server.Requests(), 3)
}

func TestPermissionList_Empty(t *testing.T) {
	server := drivetest.NewServer(t)
	server.AddPermissions("file-1")
	api := driveops.New(server.Service(t))

	permissions, err := driveops.Execute(context.Background(), api, driveops.NewPermissionListCommand("file-1"))
	require.NoError(t, err)
	assert.NotNil(t, permissions)
	assert.Empty(t, permissions)
}

func TestPermissionList_Validation(t *testing.T) {
	server := drivetest.NewServer(t)
	api := driveops.New(server.Service(t))

	_, err := driveops.Execute(context.Background(), api, driveops.NewPermissionListCommand(" "))
	require.Error(t, err)
	assert.ErrorIs(t, err, driveops.ErrPermissionList)
	assert.ErrorIs(t, err, driveops.ErrInvalidArgument)
	assert.Empty(t, server.Requests())
}

func TestPermissionList_RemoteFailure(t *testing.T) {
	server := drivetest.NewServer(t)
	server.Fail(http.StatusForbidden, "insufficientFilePermissions", "The user does not have sufficient permissions for this file.")
	api := driveops.New(server.Service(t))

	permissions, err := driveops.Execute(context.Background(), api, driveops.NewPermissionListCommand("file-1"))
	require.Error(t, err)
	assert.Nil(t, permissions)
	assert.ErrorIs(t, err, driveops.ErrPermissionList)
	assert.ErrorIs(t, err, driveops.ErrForbidden)
	assert.Contains(t, err.Error(), "file-1")
	assert.Contains(t, err.Error(), "sufficient permissions")
}

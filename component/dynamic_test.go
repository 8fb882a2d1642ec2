package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jumpaku/go-driveops/component"
)

func TestDynamicString_Evaluate(t *testing.T) {
	msg := component.NewMessage("perm-1")
	msg.Attributes["fileId"] = " file-1 "

	tests := []struct {
		name      string
		value     component.DynamicString
		want      string
		wantFound bool
	}{
		{name: "zero", value: component.DynamicString{}, want: "", wantFound: false},
		{name: "static", value: component.Static("file-2"), want: "file-2", wantFound: true},
		{name: "blank static", value: component.Static("  "), want: "", wantFound: false},
		{name: "payload", value: component.MustExpression("{{ .Payload }}"), want: "perm-1", wantFound: true},
		{name: "attribute trimmed", value: component.MustExpression("{{ .Attributes.fileId }}"), want: "file-1", wantFound: true},
		{name: "missing attribute", value: component.MustExpression("{{ .Attributes.driveId }}"), want: "", wantFound: false},
		{name: "concatenation", value: component.MustExpression("{{ .Payload }}-x"), want: "perm-1-x", wantFound: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := tt.value.Evaluate(msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestDynamicString_InvalidExpression(t *testing.T) {
	_, err := component.Expression("{{ .Payload ")
	assert.Error(t, err)
	assert.Panics(t, func() { component.MustExpression("{{ .Payload ") })
}

func TestDynamicString_IsBlank(t *testing.T) {
	assert.True(t, component.DynamicString{}.IsBlank())
	assert.True(t, component.Static(" ").IsBlank())
	assert.False(t, component.Static("x").IsBlank())
	assert.False(t, component.MustExpression("{{ .Payload }}").IsBlank())
}

func TestMessage_PayloadString(t *testing.T) {
	assert.Equal(t, "", component.NewMessage(nil).PayloadString())
	assert.Equal(t, "perm-1", component.NewMessage("perm-1").PayloadString())
	assert.Equal(t, "perm-1", component.NewMessage([]byte("perm-1")).PayloadString())
	assert.Equal(t, "42", component.NewMessage(42).PayloadString())
	assert.Equal(t, "42", component.NewMessage(int64(42)).PayloadString())
	assert.Equal(t, "true", component.NewMessage(true).PayloadString())
}

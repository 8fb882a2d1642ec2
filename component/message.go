package component

import (
	"fmt"
	"strconv"
)

// Attribute names set on output messages.
const (
	AttributeFileID        = "fileId"
	AttributePermissionID  = "permissionId"
	AttributeDriveID       = "driveId"
	AttributeOrderBy       = "orderBy"
	AttributeQuery         = "query"
	AttributePageSize      = "pageSize"
	AttributeNextPageToken = "nextPageToken"
)

// Message is the envelope flowing between components.
type Message struct {
	Payload    any
	Attributes map[string]any
}

// NewMessage returns a message carrying payload and no attributes.
func NewMessage(payload any) Message {
	return Message{Payload: payload, Attributes: map[string]any{}}
}

// PayloadString converts the payload to a string. A nil payload converts to "".
func (m Message) PayloadString() string {
	switch p := m.Payload.(type) {
	case nil:
		return ""
	case string:
		return p
	case []byte:
		return string(p)
	case fmt.Stringer:
		return p.String()
	case int:
		return strconv.Itoa(p)
	case int64:
		return strconv.FormatInt(p, 10)
	default:
		return fmt.Sprint(p)
	}
}

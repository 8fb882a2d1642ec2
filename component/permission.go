package component

import (
	"context"

	"github.com/Jumpaku/go-driveops"
)

// PermissionDelete deletes a permission from a file.
//
// When PermissionID is not configured, the permission id is taken from the message payload.
// The output payload is the deleted permission id.
type PermissionDelete struct {
	Runtime
	FileID       DynamicString
	PermissionID DynamicString
}

func (c *PermissionDelete) Apply(ctx context.Context, msg Message) (Message, error) {
	logger, err := c.invocation("permission-delete")
	if err != nil {
		return Message{}, err
	}

	fileID, err := resolve(c.FileID, msg, false, driveops.ErrPermissionDelete, "file id")
	if err != nil {
		return Message{}, err
	}
	permissionID, err := resolve(c.PermissionID, msg, true, driveops.ErrPermissionDelete, "permission id")
	if err != nil {
		return Message{}, err
	}

	logger.Debug().Str(AttributeFileID, fileID).Str(AttributePermissionID, permissionID).Msg("deleting permission")
	if _, err := driveops.Execute(ctx, c.api, driveops.NewPermissionDeleteCommand(fileID, permissionID)); err != nil {
		logger.Warn().Err(err).Msg("permission delete failed")
		return Message{}, err
	}

	out := NewMessage(permissionID)
	out.Attributes[AttributeFileID] = fileID
	out.Attributes[AttributePermissionID] = permissionID
	return out, nil
}

// PermissionList lists the permissions of a file.
//
// When FileID is not configured, the file id is taken from the message payload.
// The output payload is a []*driveops.Record, one per permission.
type PermissionList struct {
	Runtime
	FileID DynamicString
}

func (c *PermissionList) Apply(ctx context.Context, msg Message) (Message, error) {
	logger, err := c.invocation("permission-list")
	if err != nil {
		return Message{}, err
	}

	fileID, err := resolve(c.FileID, msg, true, driveops.ErrPermissionList, "file id")
	if err != nil {
		return Message{}, err
	}

	logger.Debug().Str(AttributeFileID, fileID).Msg("listing permissions")
	permissions, err := driveops.Execute(ctx, c.api, driveops.NewPermissionListCommand(fileID))
	if err != nil {
		logger.Warn().Err(err).Msg("permission list failed")
		return Message{}, err
	}

	out := NewMessage(permissions)
	out.Attributes[AttributeFileID] = fileID
	return out, nil
}

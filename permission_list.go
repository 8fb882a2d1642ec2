package driveops

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
)

// PermissionListCommand lists every permission attached to a file, in the order Drive returns them.
type PermissionListCommand struct {
	fileID string
}

var _ Command[[]*Record] = PermissionListCommand{}

func NewPermissionListCommand(fileID string) PermissionListCommand {
	return PermissionListCommand{fileID: fileID}
}

func (c PermissionListCommand) FileID() string {
	return c.fileID
}

func (c PermissionListCommand) Name() string {
	return "permission.list"
}

func (c PermissionListCommand) Validate() error {
	if isBlank(c.fileID) {
		return newInvalidArgumentError(ErrPermissionList, "file id must not be blank")
	}
	return nil
}

func (c PermissionListCommand) Execute(ctx context.Context, service *drive.Service) ([]*Record, error) {
	permissions := []*Record{}
	err := service.Permissions.List(c.fileID).
		SupportsAllDrives(true).
		Fields(allFields).
		Pages(ctx, func(list *drive.PermissionList) error {
			permissions = append(permissions, mapAll(list.Permissions, MapPermission)...)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (c PermissionListCommand) OnFailure(err error) error {
	msg := fmt.Sprintf("could not list permissions of file id=[%s]", c.fileID)
	return newCommandError(ErrPermissionList, msg, err)
}

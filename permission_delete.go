package driveops

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
)

// PermissionDeleteCommand removes a permission from a file.
type PermissionDeleteCommand struct {
	fileID       string
	permissionID string
}

var _ Command[struct{}] = PermissionDeleteCommand{}

func NewPermissionDeleteCommand(fileID, permissionID string) PermissionDeleteCommand {
	return PermissionDeleteCommand{fileID: fileID, permissionID: permissionID}
}

func (c PermissionDeleteCommand) FileID() string {
	return c.fileID
}

func (c PermissionDeleteCommand) PermissionID() string {
	return c.permissionID
}

func (c PermissionDeleteCommand) Name() string {
	return "permission.delete"
}

func (c PermissionDeleteCommand) Validate() error {
	if isBlank(c.fileID) {
		return newInvalidArgumentError(ErrPermissionDelete, "file id must not be blank")
	}
	if isBlank(c.permissionID) {
		return newInvalidArgumentError(ErrPermissionDelete, "permission id must not be blank")
	}
	return nil
}

func (c PermissionDeleteCommand) Execute(ctx context.Context, service *drive.Service) (struct{}, error) {
	err := service.Permissions.Delete(c.fileID, c.permissionID).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	return struct{}{}, err
}

func (c PermissionDeleteCommand) OnFailure(err error) error {
	msg := fmt.Sprintf("could not delete permission id=[%s] from file id=[%s]", c.permissionID, c.fileID)
	return newCommandError(ErrPermissionDelete, msg, err)
}

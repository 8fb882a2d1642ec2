// Package driveopsmust wraps the driveops package with panic-based error handling.
//
// It provides the same Drive operations as the root-level driveops package,
// but instead of returning errors, all exported methods panic on failure.
// The panic value is the *driveops.CommandError that driveops would have returned.
package driveopsmust

import (
	"context"

	"github.com/Jumpaku/go-driveops"
	"google.golang.org/api/drive/v3"
)

// API executes Drive commands.
//
// All methods of API panic on error instead of returning an error value.
type API struct {
	api *driveops.API
}

// New creates a new API instance with the given drive.Service.
// The service should be properly authenticated before being passed to this function.
func New(service *drive.Service, opts ...driveops.Option) *API {
	return &API{api: driveops.New(service, opts...)}
}

// Wrap returns an API executing commands through api.
func Wrap(api *driveops.API) *API {
	return &API{api: api}
}

// PermissionDelete removes the permission with the given permissionID from the file with the given fileID.
//
// It panics if either identifier is blank (the underlying error would match ErrInvalidArgument)
// or if the deletion fails.
func (a *API) PermissionDelete(ctx context.Context, fileID, permissionID string) {
	_ = must1(driveops.Execute(ctx, a.api, driveops.NewPermissionDeleteCommand(fileID, permissionID)))
}

// PermissionList lists all permissions for the file with the given fileID, in the order Drive returns them.
//
// It panics if listing permissions fails for any reason.
func (a *API) PermissionList(ctx context.Context, fileID string) (permissions []*driveops.Record) {
	return must1(driveops.Execute(ctx, a.api, driveops.NewPermissionListCommand(fileID)))
}

// FileList lists one page of files matching params.
// Use FilePage.NextPageToken to request the following page.
//
// It panics if the listing fails.
func (a *API) FileList(ctx context.Context, params driveops.FileListParams) (page driveops.FilePage) {
	return must1(driveops.Execute(ctx, a.api, driveops.NewFileListCommand(params)))
}

// FileListAll lists every file matching params by following page tokens, starting at params.PageToken.
// f is called once per page.
//
// It panics if any page fails or if f returns an error.
func (a *API) FileListAll(ctx context.Context, params driveops.FileListParams, f func(driveops.FilePage) error) {
	cmd := driveops.NewFileListCommand(params)
	for {
		page := must1(driveops.Execute(ctx, a.api, cmd))
		must0(f(page))
		next, ok := cmd.Next(page)
		if !ok {
			return
		}
		cmd = next
	}
}

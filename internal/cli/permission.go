package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Jumpaku/go-driveops"
)

var permissionColumns = []string{"id", "grantee", "role", "displayName"}

func permissionCell(r *driveops.Record, column string) string {
	if column != "grantee" {
		return cell(r, column)
	}
	g, ok := driveops.PermissionGrantee(r)
	if !ok {
		return ""
	}
	return g.String()
}

func newPermissionCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permission",
		Short: "Manage permissions of a file",
	}
	cmd.AddCommand(
		newPermissionListCommand(root),
		newPermissionDeleteCommand(root),
	)
	return cmd
}

type permissionListOptions struct {
	minRole string
}

func newPermissionListCommand(root *rootOptions) *cobra.Command {
	opts := &permissionListOptions{}
	cmd := &cobra.Command{
		Use:   "list FILE_ID",
		Short: "List every permission of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var minRole driveops.Role
			if opts.minRole != "" {
				var err error
				if minRole, err = driveops.ParseRole(opts.minRole); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			api, err := root.api(ctx)
			if err != nil {
				return err
			}
			permissions, err := driveops.Execute(ctx, api, driveops.NewPermissionListCommand(args[0]))
			if err != nil {
				return err
			}
			if minRole != "" {
				permissions = slices.DeleteFunc(permissions, func(p *driveops.Record) bool {
					return !driveops.PermissionRole(p).AtLeast(minRole)
				})
			}
			return output{
				Value:   permissions,
				Rows:    permissions,
				Columns: permissionColumns,
				Cell:    permissionCell,
			}.write(cmd.OutOrStdout(), root.output)
		},
	}
	cmd.Flags().StringVar(&opts.minRole, "min-role", "", "Only list permissions granting at least this role (reader, commenter, writer, fileOrganizer, organizer, owner)")
	return cmd
}

type permissionDeleteOptions struct {
	concurrency int
}

func newPermissionDeleteCommand(root *rootOptions) *cobra.Command {
	opts := &permissionDeleteOptions{}
	cmd := &cobra.Command{
		Use:   "delete FILE_ID PERMISSION_ID...",
		Short: "Delete permissions from a file",
		Long: `Deletes each given permission from the file. Deletions run concurrently; every permission is attempted
and the command fails if any of them could not be deleted.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.concurrency < 1 {
				return fmt.Errorf("concurrency must be positive, got %d", opts.concurrency)
			}
			ctx := cmd.Context()
			api, err := root.api(ctx)
			if err != nil {
				return err
			}

			fileID, permissionIDs := args[0], args[1:]
			results := make([]*driveops.Record, len(permissionIDs))
			errs := make([]error, len(permissionIDs))

			var g errgroup.Group
			g.SetLimit(opts.concurrency)
			for i, permissionID := range permissionIDs {
				g.Go(func() error {
					_, errs[i] = driveops.Execute(ctx, api, driveops.NewPermissionDeleteCommand(fileID, permissionID))
					results[i] = deleteResult(fileID, permissionID, errs[i])
					return nil
				})
			}
			_ = g.Wait()

			if err := (output{
				Value:   results,
				Rows:    results,
				Columns: []string{"fileId", "permissionId", "deleted", "error"},
			}).write(cmd.OutOrStdout(), root.output); err != nil {
				return err
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 4, "Maximum number of deletions in flight")
	return cmd
}

func deleteResult(fileID, permissionID string, err error) *driveops.Record {
	r := driveops.NewRecord()
	r.Set("fileId", fileID)
	r.Set("permissionId", permissionID)
	r.Set("deleted", err == nil)
	if err != nil {
		r.Set("error", err.Error())
	}
	return r
}

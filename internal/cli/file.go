package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jumpaku/go-driveops"
	"github.com/Jumpaku/go-driveops/internal/pager"
)

var fileColumns = []string{"id", "name", "mimeType", "modifiedTime"}

func newFileCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Query files",
	}
	cmd.AddCommand(newFileListCommand(root))
	return cmd
}

type fileListOptions struct {
	params   driveops.FileListParams
	all      bool
	maxPages int
	rate     float64
}

func newFileListCommand(root *rootOptions) *cobra.Command {
	opts := &fileListOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files",
		Long: `Lists one page of files. The token of the next page is printed with the result and can be passed
back with --page-token. With --all, pages are followed until the listing is exhausted or --max-pages is reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			api, err := root.api(ctx)
			if err != nil {
				return err
			}

			if !opts.all {
				page, err := driveops.Execute(ctx, api, driveops.NewFileListCommand(opts.params))
				if err != nil {
					return err
				}
				return fileListOutput(page.Files, page.NextPageToken, page.IncompleteSearch).write(cmd.OutOrStdout(), root.output)
			}

			var files []*driveops.Record
			incomplete := false
			remaining, err := pager.New(opts.rate, opts.maxPages).Run(ctx, opts.params.PageToken, func(ctx context.Context, token string) (string, error) {
				params := opts.params
				params.PageToken = token
				page, err := driveops.Execute(ctx, api, driveops.NewFileListCommand(params))
				if err != nil {
					return "", err
				}
				root.logger.Debug().Int("files", len(page.Files)).Str("nextPageToken", page.NextPageToken).Msg("page fetched")
				files = append(files, page.Files...)
				incomplete = incomplete || page.IncompleteSearch
				return page.NextPageToken, nil
			})
			if err != nil {
				return err
			}
			return fileListOutput(files, remaining, incomplete).write(cmd.OutOrStdout(), root.output)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.params.DriveID, "drive-id", "", "Shared drive to list")
	flags.StringVar(&opts.params.OrderBy, "order-by", "", `Sort keys, e.g. "modifiedTime desc,name"`)
	flags.StringVarP(&opts.params.Query, "query", "q", "", `Search query, e.g. "name contains 'report'"`)
	flags.StringVar(&opts.params.PageToken, "page-token", "", "Token of the page to start from")
	flags.Int64Var(&opts.params.PageSize, "page-size", 0, "Maximum number of files per page")
	flags.BoolVar(&opts.all, "all", false, "Follow page tokens")
	flags.IntVar(&opts.maxPages, "max-pages", 0, "Stop after this many pages with --all (0 for no limit)")
	flags.Float64Var(&opts.rate, "rate", 5, "Maximum pages requested per second with --all (0 for no limit)")
	return cmd
}

func fileListOutput(files []*driveops.Record, nextPageToken string, incomplete bool) output {
	if files == nil {
		files = []*driveops.Record{}
	}
	value := driveops.NewRecord()
	value.Set("files", files)
	if nextPageToken != "" {
		value.Set("nextPageToken", nextPageToken)
	}
	if incomplete {
		value.Set("incompleteSearch", true)
	}

	caption := ""
	if nextPageToken != "" {
		caption = fmt.Sprintf("next page token: %s", nextPageToken)
	}
	return output{
		Value:   value,
		Rows:    files,
		Columns: fileColumns,
		Caption: caption,
	}
}

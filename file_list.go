package driveops

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
)

// FileListParams are the inputs of a single files.list call.
// Query and OrderBy use the Drive query language and are passed through verbatim.
type FileListParams struct {
	// DriveID restricts the listing to a shared drive.
	DriveID string
	// OrderBy is a comma-separated list of sort keys, e.g. "modifiedTime desc,name".
	OrderBy string
	// Query is a files.list search expression, e.g. "name contains 'report'".
	Query string
	// PageToken continues a previous listing. Empty requests the first page.
	PageToken string
	// PageSize bounds the number of files returned. Zero leaves it to Drive.
	PageSize int64
}

// FilePage is one page of a file listing.
type FilePage struct {
	Files []*Record
	// NextPageToken is empty on the last page.
	NextPageToken string
	// IncompleteSearch reports that Drive did not search every corpus.
	IncompleteSearch bool
}

// HasNext reports whether another page can be requested with NextPageToken.
func (p FilePage) HasNext() bool {
	return p.NextPageToken != ""
}

// FileListCommand lists a single page of files. Paging through further pages is left to the caller.
type FileListCommand struct {
	params FileListParams
}

var _ Command[FilePage] = FileListCommand{}

func NewFileListCommand(params FileListParams) FileListCommand {
	return FileListCommand{params: params}
}

func (c FileListCommand) Params() FileListParams {
	return c.params
}

// Next returns the command requesting the page after p, with the same parameters otherwise.
func (c FileListCommand) Next(p FilePage) (next FileListCommand, ok bool) {
	if !p.HasNext() {
		return FileListCommand{}, false
	}
	params := c.params
	params.PageToken = p.NextPageToken
	return FileListCommand{params: params}, true
}

func (c FileListCommand) Name() string {
	return "file.list"
}

func (c FileListCommand) Validate() error {
	if c.params.PageSize < 0 {
		return newInvalidArgumentError(ErrFileList, fmt.Sprintf("page size must be positive, got %d", c.params.PageSize))
	}
	return nil
}

func (c FileListCommand) Execute(ctx context.Context, service *drive.Service) (FilePage, error) {
	call := service.Files.List().
		SupportsAllDrives(true).
		Fields(allFields).
		Context(ctx)
	if c.params.DriveID != "" {
		call = call.DriveId(c.params.DriveID).
			Corpora("drive").
			IncludeItemsFromAllDrives(true)
	}
	if c.params.OrderBy != "" {
		call = call.OrderBy(c.params.OrderBy)
	}
	if c.params.Query != "" {
		call = call.Q(c.params.Query)
	}
	if c.params.PageToken != "" {
		call = call.PageToken(c.params.PageToken)
	}
	if c.params.PageSize > 0 {
		call = call.PageSize(c.params.PageSize)
	}

	list, err := call.Do()
	if err != nil {
		return FilePage{}, err
	}
	return FilePage{
		Files:            append([]*Record{}, mapAll(list.Files, MapFile)...),
		NextPageToken:    list.NextPageToken,
		IncompleteSearch: list.IncompleteSearch,
	}, nil
}

func (c FileListCommand) OnFailure(err error) error {
	msg := fmt.Sprintf("could not list files (query=[%s], orderBy=[%s], driveId=[%s], pageToken=[%s], pageSize=[%d])",
		c.params.Query,
		c.params.OrderBy,
		c.params.DriveID,
		c.params.PageToken,
		c.params.PageSize)
	return newCommandError(ErrFileList, msg, err)
}

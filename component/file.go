package component

import (
	"context"

	"github.com/Jumpaku/go-driveops"
)

// FileList lists one page of files.
//
// The output payload is a []*driveops.Record, one per file. The token of the next page, if any,
// is set as the nextPageToken attribute so that a following invocation can use it as PageToken.
type FileList struct {
	Runtime
	DriveID   DynamicString
	OrderBy   DynamicString
	Query     DynamicString
	PageToken DynamicString
	PageSize  int64
}

func (c *FileList) Apply(ctx context.Context, msg Message) (Message, error) {
	logger, err := c.invocation("file-list")
	if err != nil {
		return Message{}, err
	}

	params := driveops.FileListParams{PageSize: c.PageSize}
	for _, p := range []struct {
		value    DynamicString
		target   *string
		property string
	}{
		{c.DriveID, &params.DriveID, "drive id"},
		{c.OrderBy, &params.OrderBy, "order by"},
		{c.Query, &params.Query, "query"},
		{c.PageToken, &params.PageToken, "page token"},
	} {
		v, err := resolve(p.value, msg, false, driveops.ErrFileList, p.property)
		if err != nil {
			return Message{}, err
		}
		*p.target = v
	}

	logger.Debug().
		Str(AttributeDriveID, params.DriveID).
		Str(AttributeQuery, params.Query).
		Str(AttributeOrderBy, params.OrderBy).
		Int64(AttributePageSize, params.PageSize).
		Msg("listing files")
	page, err := driveops.Execute(ctx, c.api, driveops.NewFileListCommand(params))
	if err != nil {
		logger.Warn().Err(err).Msg("file list failed")
		return Message{}, err
	}

	out := NewMessage(page.Files)
	if params.DriveID != "" {
		out.Attributes[AttributeDriveID] = params.DriveID
	}
	if params.OrderBy != "" {
		out.Attributes[AttributeOrderBy] = params.OrderBy
	}
	if params.Query != "" {
		out.Attributes[AttributeQuery] = params.Query
	}
	if params.PageSize > 0 {
		out.Attributes[AttributePageSize] = params.PageSize
	}
	if page.HasNext() {
		out.Attributes[AttributeNextPageToken] = page.NextPageToken
	}
	return out, nil
}

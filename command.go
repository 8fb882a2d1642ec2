package driveops

import (
	"context"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// Command is one Drive operation with all of its parameters bound.
// Implementations are immutable and may be executed concurrently.
type Command[R any] interface {
	// Name identifies the operation in logs.
	Name() string
	// Validate rejects parameters that would make the remote call pointless.
	Validate() error
	// Execute performs the remote call and projects its response.
	Execute(ctx context.Context, service *drive.Service) (R, error)
	// OnFailure maps a failure of Execute into the command's error family.
	OnFailure(err error) error
}

// allFields selects every field of the response.
const allFields googleapi.Field = "*"

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

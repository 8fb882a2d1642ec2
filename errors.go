package driveops

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Command families. Every error returned by Execute matches exactly one of them with errors.Is.
var (
	ErrPermissionDelete = errors.New("permission delete error")
	ErrPermissionList   = errors.New("permission list error")
	ErrFileList         = errors.New("file list error")
	ErrConfiguration    = errors.New("configuration error")
)

// ErrInvalidArgument is matched by errors raised before any remote call is made.
var ErrInvalidArgument = errors.New("invalid argument")

// Classification of remote failures, derived from the HTTP status of a *googleapi.Error.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
)

// CommandError is returned when a command is rejected or its remote call fails.
// It matches its family sentinel, the classification of the cause if any, and the cause itself.
type CommandError struct {
	family error
	msg    string
	cause  error
}

var _ error = (*CommandError)(nil)

func newCommandError(family error, msg string, cause error) error {
	return &CommandError{
		family: family,
		msg:    msg,
		cause:  cause,
	}
}

func newInvalidArgumentError(family error, msg string) error {
	return newCommandError(family, msg, ErrInvalidArgument)
}

func newConfigurationError(msg string, cause error) error {
	return newCommandError(ErrConfiguration, msg, cause)
}

// Family returns the sentinel of the command family that produced err.
func (err *CommandError) Family() error {
	return err.family
}

// Cause returns the underlying failure.
func (err *CommandError) Cause() error {
	return err.cause
}

func (err *CommandError) Error() string {
	if err == nil {
		return "(*CommandError)(nil)"
	}
	message := err.family.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *CommandError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.family}
	}
	if kind := classify(err.cause); kind != nil {
		return []error{err.family, kind, err.cause}
	}
	return []error{err.family, err.cause}
}

func classify(err error) error {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return nil
	}
	switch gErr.Code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		if isRateLimitReason(gErr) {
			return ErrRateLimited
		}
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return nil
}

// Drive reports per-user quota exhaustion as 403 with a rate limit reason.
func isRateLimitReason(gErr *googleapi.Error) bool {
	for _, item := range gErr.Errors {
		switch item.Reason {
		case "rateLimitExceeded", "userRateLimitExceeded":
			return true
		}
	}
	return false
}

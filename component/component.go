// Package component adapts driveops commands to message-driven flow components.
//
// A component is configured once, initialized once (which builds its Drive client), and then
// applied to any number of messages, possibly concurrently. Properties are DynamicStrings resolved
// against each message before the command is built; the resulting records become the payload of
// the output message, and the resolved inputs become its attributes.
package component

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Jumpaku/go-driveops"
)

// ErrNotInitialized is returned by Apply when Initialize has not succeeded.
var ErrNotInitialized = errors.New("component: not initialized")

// Factory builds the API a component executes its commands with.
type Factory func(ctx context.Context, cfg driveops.Configuration) (*driveops.API, error)

// ServiceAccountFactory builds APIs authenticated with the Service Account of the configuration.
func ServiceAccountFactory(logger zerolog.Logger) Factory {
	return func(ctx context.Context, cfg driveops.Configuration) (*driveops.API, error) {
		return driveops.NewFromConfig(ctx, cfg, driveops.WithLogger(logger))
	}
}

// Runtime holds what every component needs to reach Drive.
type Runtime struct {
	// Configuration is used by Initialize to build the Drive client.
	Configuration driveops.Configuration
	// Factory defaults to ServiceAccountFactory with Logger.
	Factory Factory
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger

	api *driveops.API
}

func (r *Runtime) logger() zerolog.Logger {
	if r.Logger == nil {
		return zerolog.Nop()
	}
	return *r.Logger
}

// Initialize builds the Drive client. It must succeed before Apply is called.
func (r *Runtime) Initialize(ctx context.Context) error {
	factory := r.Factory
	if factory == nil {
		factory = ServiceAccountFactory(r.logger())
	}
	api, err := factory(ctx, r.Configuration)
	if err != nil {
		return fmt.Errorf("component: initialize: %w", err)
	}
	r.api = api
	return nil
}

func (r *Runtime) invocation(name string) (zerolog.Logger, error) {
	logger := r.logger().With().
		Str("component", name).
		Str("invocation", uuid.NewString()).
		Logger()
	if r.api == nil {
		return logger, ErrNotInitialized
	}
	return logger, nil
}

// resolve evaluates d against msg, falling back to the payload when d is blank and fallback is set.
func resolve(d DynamicString, msg Message, fallback bool, family error, property string) (string, error) {
	if d.IsBlank() {
		if fallback {
			return msg.PayloadString(), nil
		}
		return "", nil
	}
	value, _, err := d.Evaluate(msg)
	if err != nil {
		return "", fmt.Errorf("%w: could not resolve %s: %w: %w", family, property, driveops.ErrInvalidArgument, err)
	}
	return value, nil
}

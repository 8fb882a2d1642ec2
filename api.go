package driveops

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DefaultTimeout bounds a single HTTP exchange with Drive when Configuration.Timeout is unset.
const DefaultTimeout = 60 * time.Second

// Configuration holds what is needed to build an authenticated Drive client for a Service Account.
type Configuration struct {
	// ServiceAccountKey is the JSON private key of the Service Account.
	ServiceAccountKey []byte
	// Subject is the user to impersonate with domain-wide delegation. Empty means the Service Account itself.
	Subject string
	// Scopes requested for the token. Defaults to drive.DriveScope.
	Scopes []string
	// Endpoint overrides the Drive API base URL.
	Endpoint string
	// Timeout is applied to the HTTP client. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// API executes commands against a single authenticated Drive service.
// It is safe for concurrent use.
type API struct {
	service *drive.Service
	logger  zerolog.Logger
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger commands are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(api *API) {
		api.logger = logger
	}
}

// New creates a new API with the given drive.Service.
func New(service *drive.Service, opts ...Option) *API {
	api := &API{service: service, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// NewFromConfig creates a new API whose client authenticates as the Service Account described by cfg.
// Failures match ErrConfiguration.
func NewFromConfig(ctx context.Context, cfg Configuration, opts ...Option) (*API, error) {
	service, err := newService(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(service, opts...), nil
}

func newService(ctx context.Context, cfg Configuration) (*drive.Service, error) {
	if len(cfg.ServiceAccountKey) == 0 {
		return nil, newConfigurationError("service account key must not be empty", nil)
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{drive.DriveScope}
	}
	jwtConfig, err := google.JWTConfigFromJSON(cfg.ServiceAccountKey, scopes...)
	if err != nil {
		return nil, newConfigurationError("failed to parse service account key", err)
	}
	jwtConfig.Subject = cfg.Subject

	client := jwtConfig.Client(ctx)
	client.Timeout = cfg.Timeout
	if client.Timeout <= 0 {
		client.Timeout = DefaultTimeout
	}

	clientOptions := []option.ClientOption{option.WithHTTPClient(client)}
	if cfg.Endpoint != "" {
		clientOptions = append(clientOptions, option.WithEndpoint(cfg.Endpoint))
	}
	service, err := drive.NewService(ctx, clientOptions...)
	if err != nil {
		return nil, newConfigurationError("failed to create drive service", err)
	}
	return service, nil
}

// Execute validates cmd and runs it against the service owned by api.
// Any failure of the remote call is returned as cmd.OnFailure(err).
func Execute[R any](ctx context.Context, api *API, cmd Command[R]) (result R, err error) {
	logger := api.logger.With().Str("command", cmd.Name()).Logger()

	if err := cmd.Validate(); err != nil {
		logger.Debug().Err(err).Msg("command rejected")
		return result, err
	}

	logger.Debug().Msg("executing command")
	started := time.Now()
	result, err = cmd.Execute(ctx, api.service)
	if err != nil {
		err = cmd.OnFailure(err)
		logger.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("command failed")
		var zero R
		return zero, err
	}
	logger.Debug().Dur("elapsed", time.Since(started)).Msg("command succeeded")
	return result, nil
}

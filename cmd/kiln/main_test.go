package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/kilnworks/kiln/internal/app"
	"github.com/kilnworks/kiln/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// newTestComponents builds a real App over mocks. The version command never
// touches the collaborators, so no expectations are needed.
func newTestComponents(ctrl *gomock.Controller) *app.Components {
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mocks.NewMockConfigSource(ctrl),
		mockLogger,
		fs.NewHasher(),
		fs.NewExistsIndex(),
		mocks.NewMockDependencyResolver(ctrl),
		mocks.NewMockWatcher(ctrl),
		mocks.NewMockReloader(ctrl),
		mocks.NewMockTelemetry(ctrl),
	)

	return &app.Components{
		App:    application,
		Logger: mockLogger,
	}
}

// TestRun_Success verifies that the run function returns 0 when the command
// succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components := newTestComponents(ctrl)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_UnknownCommand verifies that run returns 1 and logs the error for
// an unknown subcommand.
func TestRun_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components := newTestComponents(ctrl)
	components.Logger.(*mocks.MockLogger).EXPECT().Error(gomock.Any())

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"nonsense"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

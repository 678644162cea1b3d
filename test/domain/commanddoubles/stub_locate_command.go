//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/rpmdeploy/internal/domain/commands"
	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
)

// StubLocateCommand is a stub implementation of commands.Locate.
type StubLocateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Targets          []entities.UploadTarget
	LastSettings     *entities.Settings
}

var _ commands.Locate = (*StubLocateCommand)(nil)

func (s *StubLocateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.UploadTarget, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Targets, s.ExecuteErr
}

package commands

import (
	"context"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/domain/repositories"
)

// Locate is the interface for the locate command (offline preview).
type Locate interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.UploadTarget, error)
}

// LocateCommand finds and validates the artifacts of a build and resolves
// where each would be uploaded, without contacting the repository.
type LocateCommand struct {
	locator repositories.LocatorRepository
}

// NewLocateCommand creates a new LocateCommand.
func NewLocateCommand(locator repositories.LocatorRepository) *LocateCommand {
	return &LocateCommand{locator: locator}
}

// Execute returns the resolved targets in upload order.
func (it *LocateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.UploadTarget, error) {
	targets, err := locateTargets(it.locator, settings)
	if err != nil {
		return nil, err
	}

	repository := settings.Repository()
	resolved := make([]entities.UploadTarget, 0, len(targets))
	for _, target := range targets {
		next, resolveErr := resolveTarget(target, repository, settings.Version)
		if resolveErr != nil {
			return nil, resolveErr
		}
		resolved = append(resolved, next)
	}

	return resolved, nil
}

package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewDeployCommand); err != nil {
		return err
	}
	if err := container.Provide(NewLocateCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *DeployCommand) Deploy {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *LocateCommand) Locate {
		return impl
	}); err != nil {
		return err
	}

	return nil
}

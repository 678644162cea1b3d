package controllers

import (
	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewDeployController); err != nil {
		return err
	}
	if err := container.Provide(NewLocateController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	deployController *DeployController,
	locateController *LocateController,
) *[]entities.Controller {
	return &[]entities.Controller{
		deployController,
		locateController,
	}
}

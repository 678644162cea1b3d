package internal

import "github.com/rios0rios0/rpmdeploy/internal/domain/entities"

// AppInternal is the application context exposed to the entry point.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers mounted as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

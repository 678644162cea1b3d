package entities

import "github.com/spf13/cobra"

// ControllerBind carries the Cobra metadata a controller is mounted with.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI subcommand backed by a domain command.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(command *cobra.Command)
	Execute(command *cobra.Command, arguments []string) error
}

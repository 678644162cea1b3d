package controllers

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rpmdeploy/internal/domain/commands"
	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
)

// LocateController handles the "locate" subcommand.
type LocateController struct {
	command commands.Locate
}

// NewLocateController creates a new LocateController.
func NewLocateController(command commands.Locate) *LocateController {
	return &LocateController{command: command}
}

// GetBind returns the Cobra command metadata for the locate controller.
func (it *LocateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "locate",
		Short: "List the RPMs of a build and where they would be uploaded",
		Long: heredoc.Doc(`
			Run the same checks as deploy and print one line per RPM with its
			upload URL. The artifact repository is never contacted.`),
	}
}

// AddFlags adds the locate-specific flags to the given Cobra command.
func (it *LocateController) AddFlags(cmd *cobra.Command) {
	addSettingsFlags(cmd)
}

// Execute prints "<path> -> <url>" for every artifact.
func (it *LocateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	targets, err := it.command.Execute(ctx, settings)
	if err != nil {
		return fmt.Errorf("locate failed: %w", err)
	}

	for _, target := range targets {
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", target.Path, target.URL)
	}
	return nil
}

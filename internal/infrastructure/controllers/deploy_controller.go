package controllers

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rpmdeploy/internal/domain/commands"
	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
)

// DeployController handles the "deploy" subcommand.
type DeployController struct {
	command commands.Deploy
}

// NewDeployController creates a new DeployController.
func NewDeployController(command commands.Deploy) *DeployController {
	return &DeployController{command: command}
}

// GetBind returns the Cobra command metadata for the deploy controller.
func (it *DeployController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "deploy",
		Short: "Upload the RPMs of a build to the artifact repository",
		Long: heredoc.Doc(`
			Find the RPMs under <build-dir>/rpm, check that exactly --expected-rpms
			were built, and PUT each one to the artifact repository.

			Snapshot versions (containing SNAPSHOT) go to --snapshot-repository-url
			when it is set; everything else goes to --repository-url.

			A refused upload is logged and the remaining RPMs are still uploaded,
			unless --fail-on-rejection is set.`),
	}
}

// AddFlags adds the deploy-specific flags to the given Cobra command.
func (it *DeployController) AddFlags(cmd *cobra.Command) {
	addSettingsFlags(cmd)
}

// Execute runs the deploy.
func (it *DeployController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if _, err = it.command.Execute(ctx, settings, commands.DeployOptions{
		DryRun:  dryRun,
		Verbose: verbose,
	}); err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}
	return nil
}

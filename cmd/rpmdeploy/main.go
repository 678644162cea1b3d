package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/rpmdeploy/internal"
)

// version is set via ldflags during build
var version = "dev"

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           "rpmdeploy",
		Short:         "Deploy the RPMs of a build to an artifact repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: heredoc.Doc(`
			Locates the RPM packages a build produced under <build-dir>/rpm,
			checks that the expected number was built and uploads each one with
			an HTTP PUT to a Nexus (or compatible) repository.

			Usage modes:
			  rpmdeploy deploy              Upload the RPMs of the current project
			  rpmdeploy deploy --dry-run    Show the upload targets without uploading
			  rpmdeploy locate              List the RPMs and their upload URLs`),
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without uploading")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func versionCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rpmdeploy version",
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, _ []string) {
			fmt.Fprintf(command.OutOrStdout(), "rpmdeploy %s\n", version)
		},
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG and add them as subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)
	cobraRoot.AddCommand(versionCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cobraRoot.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Fatalf("Error executing 'rpmdeploy': %s", err)
	}
}

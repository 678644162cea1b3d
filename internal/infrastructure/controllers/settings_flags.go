package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
)

// addSettingsFlags adds the flags that override the configuration file.
func addSettingsFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("project-dir", "", "Project directory holding pom.xml and the build output (default \".\")")
	flags.String("build-dir", "",
		fmt.Sprintf("Build output directory, relative to the project directory (default %q)",
			entities.DefaultBuildDirectory))
	flags.String("pattern", "", fmt.Sprintf("File name pattern of the artifacts (default %q)", entities.DefaultPattern))
	flags.Int("expected-rpms", 1, "Exact number of RPMs expected under <build-dir>/rpm")
	flags.String("project-version", "", "Project version; contains SNAPSHOT for snapshot builds (default: read pom.xml)")
	flags.String("username", "", "Repository username (or set NEXUS_USERNAME)")
	flags.String("password", "", "Repository password (or set NEXUS_PASSWORD)")
	flags.String("repository-url", "", "Upload base URL for releases")
	flags.String("snapshot-repository-url", "", "Upload base URL for snapshots (default: the release URL)")
	flags.Duration("timeout", entities.DefaultTimeout, "Timeout of a single upload, 0 disables it")
	flags.Bool("fail-on-rejection", false, "Fail the run when the repository refuses any upload")
}

// loadSettings assembles the settings of an invocation:
// config file, then environment variables, then explicit flags.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, err
	}
	if envErr := settings.ApplyEnvironment(); envErr != nil {
		return nil, envErr
	}
	applyFlagOverrides(cmd.Flags(), settings)

	if finalizeErr := settings.Finalize(); finalizeErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", finalizeErr)
	}
	return settings, nil
}

// applyFlagOverrides copies every flag set on the command line into settings.
func applyFlagOverrides(flags *pflag.FlagSet, settings *entities.Settings) {
	stringFlags := map[string]*string{
		"project-dir":             &settings.ProjectDirectory,
		"build-dir":               &settings.BuildDirectory,
		"pattern":                 &settings.Pattern,
		"project-version":         &settings.Version,
		"username":                &settings.Username,
		"password":                &settings.Password,
		"repository-url":          &settings.RepositoryURL,
		"snapshot-repository-url": &settings.SnapshotURL,
	}
	for name, target := range stringFlags {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}

	if flags.Changed("expected-rpms") {
		settings.ExpectedNumberOfRpms, _ = flags.GetInt("expected-rpms")
	}
	if flags.Changed("timeout") {
		settings.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("fail-on-rejection") {
		settings.FailOnRejection, _ = flags.GetBool("fail-on-rejection")
	}
}

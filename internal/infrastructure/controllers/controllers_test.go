//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	"github.com/rios0rios0/rpmdeploy/internal/infrastructure/controllers"
	"github.com/rios0rios0/rpmdeploy/test/domain/commanddoubles"
	"github.com/rios0rios0/rpmdeploy/test/domain/entitybuilders"
)

const baseConfig = `
project_directory: .
version: "1.0"
username: deployer
password: secret
repository_url: http://nexus/repo
`

// run wires controller under a root command the way the binary does and
// executes it with args.
func run(t *testing.T, controller entities.Controller, args ...string) (string, error) {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	root := &cobra.Command{Use: "rpmdeploy", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().Bool("dry-run", false, "")
	root.PersistentFlags().BoolP("verbose", "v", false, "")

	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	sub := &cobra.Command{
		Use:  bind.Use,
		Args: cobra.NoArgs,
		RunE: controller.Execute,
	}
	controller.AddFlags(sub)
	root.AddCommand(sub)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs(append([]string{bind.Use}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".rpmdeploy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearDeployEnvironment keeps the caller's environment out of the settings.
func clearDeployEnvironment(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"NEXUS_USERNAME",
		"NEXUS_PASSWORD",
		"RPMDEPLOY_REPOSITORY_URL",
		"RPMDEPLOY_SNAPSHOT_REPOSITORY_URL",
		"RPMDEPLOY_PROJECT_VERSION",
		"RPMDEPLOY_EXPECTED_RPMS",
	} {
		t.Setenv(name, "")
	}
}

func TestDeployController(t *testing.T) {
	t.Run("should describe the deploy subcommand", func(t *testing.T) {
		// given
		controller := controllers.NewDeployController(&commanddoubles.StubDeployCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "deploy", bind.Use)
		assert.NotEmpty(t, bind.Short)
		assert.Contains(t, bind.Long, "--fail-on-rejection")
	})

	t.Run("should run the deploy with the settings of the config file", func(t *testing.T) {
		// given
		clearDeployEnvironment(t)
		stub := &commanddoubles.StubDeployCommand{Summary: &entities.DeploySummary{}}
		controller := controllers.NewDeployController(stub)
		config := writeConfig(t, baseConfig+"snapshot_rpm_repository_url: http://nexus/snapshots\n")

		// when
		_, err := run(t, controller, "--config", config)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		require.NotNil(t, stub.LastSettings)
		assert.Equal(t, "http://nexus/repo", stub.LastSettings.RepositoryURL)
		assert.Equal(t, "http://nexus/snapshots", stub.LastSettings.SnapshotURL)
		assert.Equal(t, "deployer", stub.LastSettings.Username)
		assert.Equal(t, 1, stub.LastSettings.ExpectedNumberOfRpms)
		assert.False(t, stub.LastOpts.DryRun)
	})

	t.Run("should let flags override the config file and environment", func(t *testing.T) {
		// given
		clearDeployEnvironment(t)
		t.Setenv("NEXUS_USERNAME", "from-env")
		stub := &commanddoubles.StubDeployCommand{Summary: &entities.DeploySummary{}}
		controller := controllers.NewDeployController(stub)
		config := writeConfig(t, baseConfig)

		// when
		_, err := run(t, controller,
			"--config", config,
			"--username", "from-flag",
			"--expected-rpms", "3",
			"--project-version", "2.0-SNAPSHOT",
			"--timeout", "30s",
			"--fail-on-rejection",
			"--dry-run",
			"--verbose",
		)

		// then
		require.NoError(t, err)
		require.NotNil(t, stub.LastSettings)
		assert.Equal(t, "from-flag", stub.LastSettings.Username)
		assert.Equal(t, 3, stub.LastSettings.ExpectedNumberOfRpms)
		assert.Equal(t, "2.0-SNAPSHOT", stub.LastSettings.Version)
		assert.Equal(t, 30*time.Second, stub.LastSettings.Timeout)
		assert.True(t, stub.LastSettings.FailOnRejection)
		assert.True(t, stub.LastOpts.DryRun)
		assert.True(t, stub.LastOpts.Verbose)
	})

	t.Run("should let the environment override the config file", func(t *testing.T) {
		// given
		clearDeployEnvironment(t)
		t.Setenv("NEXUS_PASSWORD", "from-env")
		t.Setenv("RPMDEPLOY_REPOSITORY_URL", "https://other/repo")
		stub := &commanddoubles.StubDeployCommand{Summary: &entities.DeploySummary{}}
		controller := controllers.NewDeployController(stub)
		config := writeConfig(t, baseConfig)

		// when
		_, err := run(t, controller, "--config", config)

		// then
		require.NoError(t, err)
		require.NotNil(t, stub.LastSettings)
		assert.Equal(t, "from-env", stub.LastSettings.Password)
		assert.Equal(t, "https://other/repo", stub.LastSettings.RepositoryURL)
	})

	t.Run("should reject an incomplete configuration before deploying", func(t *testing.T) {
		// given
		clearDeployEnvironment(t)
		stub := &commanddoubles.StubDeployCommand{}
		controller := controllers.NewDeployController(stub)
		config := writeConfig(t, "version: \"1.0\"\nusername: deployer\npassword: secret\n")

		// when
		_, err := run(t, controller, "--config", config)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "repository_url is required")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should wrap deploy failures", func(t *testing.T) {
		// given
		clearDeployEnvironment(t)
		stub := &commanddoubles.StubDeployCommand{
			ExecuteErr: entities.NewCountMismatchError("target/rpm", 1, nil),
		}
		controller := controllers.NewDeployController(stub)
		config := writeConfig(t, baseConfig)

		// when
		_, err := run(t, controller, "--config", config)

		// then
		require.ErrorIs(t, err, entities.ErrCountMismatch)
		assert.Contains(t, err.Error(), "deploy failed")
	})
}

func TestLocateController(t *testing.T) {
	t.Run("should print every target with its upload URL", func(t *testing.T) {
		// given
		clearDeployEnvironment(t)
		first := entitybuilders.NewUploadTargetBuilder().
			WithPath("target/rpm/a.rpm").
			WithURL("http://nexus/repo/a.rpm").
			BuildUploadTarget()
		second := entitybuilders.NewUploadTargetBuilder().
			WithPath("target/rpm/b.rpm").
			WithURL("http://nexus/repo/b.rpm").
			BuildUploadTarget()
		stub := &commanddoubles.StubLocateCommand{Targets: []entities.UploadTarget{first, second}}
		controller := controllers.NewLocateController(stub)
		config := writeConfig(t, baseConfig)

		// when
		out, err := run(t, controller, "--config", config, "--expected-rpms", "2")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, 2, stub.LastSettings.ExpectedNumberOfRpms)
		assert.Equal(t,
			"target/rpm/a.rpm -> http://nexus/repo/a.rpm\ntarget/rpm/b.rpm -> http://nexus/repo/b.rpm\n",
			out,
		)
	})

	t.Run("should wrap locate failures", func(t *testing.T) {
		// given
		clearDeployEnvironment(t)
		stub := &commanddoubles.StubLocateCommand{
			ExecuteErr: entities.NewMissingDirectoryError("target/rpm", nil),
		}
		controller := controllers.NewLocateController(stub)
		config := writeConfig(t, baseConfig)

		// when
		out, err := run(t, controller, "--config", config)

		// then
		require.ErrorIs(t, err, entities.ErrMissingDirectory)
		assert.Contains(t, err.Error(), "locate failed")
		assert.Empty(t, out)
	})
}

//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should register the subcommands of the injected controllers", func(t *testing.T) {
		t.Parallel()

		// given
		root := buildRootCommand()

		// when
		addSubcommands(root, injectAppContext())
		root.AddCommand(versionCommand())

		// then
		var names []string
		for _, sub := range root.Commands() {
			names = append(names, sub.Name())
		}
		assert.ElementsMatch(t, []string{"deploy", "locate", "version"}, names)

		deploy, _, err := root.Find([]string{"deploy"})
		require.NoError(t, err)
		assert.NotNil(t, deploy.Flags().Lookup("expected-rpms"))
		assert.NotNil(t, deploy.Flags().Lookup("repository-url"))
		assert.NotNil(t, root.PersistentFlags().Lookup("dry-run"))
	})

	t.Run("should print the version", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := versionCommand()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{})

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "rpmdeploy dev\n", out.String())
	})
}

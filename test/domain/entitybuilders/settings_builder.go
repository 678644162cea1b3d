//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/rpmdeploy/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create valid test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder with a valid release configuration.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    defaultSettings(),
	}
}

func defaultSettings() entities.Settings {
	settings := *entities.NewDefaultSettings()
	settings.Version = "1.0"
	settings.Username = "deployer"
	settings.Password = "secret"
	settings.RepositoryURL = "http://nexus/repo"
	return settings
}

// WithProjectDirectory sets the project directory.
func (b *SettingsBuilder) WithProjectDirectory(dir string) *SettingsBuilder {
	b.settings.ProjectDirectory = dir
	return b
}

// WithExpectedNumberOfRpms sets the expected artifact count.
func (b *SettingsBuilder) WithExpectedNumberOfRpms(expected int) *SettingsBuilder {
	b.settings.ExpectedNumberOfRpms = expected
	return b
}

// WithVersion sets the project version.
func (b *SettingsBuilder) WithVersion(version string) *SettingsBuilder {
	b.settings.Version = version
	return b
}

// WithRepositoryURL sets the release base URL.
func (b *SettingsBuilder) WithRepositoryURL(url string) *SettingsBuilder {
	b.settings.RepositoryURL = url
	return b
}

// WithSnapshotURL sets the snapshot base URL.
func (b *SettingsBuilder) WithSnapshotURL(url string) *SettingsBuilder {
	b.settings.SnapshotURL = url
	return b
}

// WithCredentials sets the basic-auth account.
func (b *SettingsBuilder) WithCredentials(username, password string) *SettingsBuilder {
	b.settings.Username = username
	b.settings.Password = password
	return b
}

// WithTimeout sets the per-upload timeout.
func (b *SettingsBuilder) WithTimeout(timeout time.Duration) *SettingsBuilder {
	b.settings.Timeout = timeout
	return b
}

// WithFailOnRejection toggles failing the run on refused uploads.
func (b *SettingsBuilder) WithFailOnRejection(fail bool) *SettingsBuilder {
	b.settings.FailOnRejection = fail
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = defaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.settings,
	}
}

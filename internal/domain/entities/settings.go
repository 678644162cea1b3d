package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBuildDirectory = "target"
	DefaultPattern        = "*.rpm"
	DefaultTimeout        = 5 * time.Minute
	artifactSubdirectory  = "rpm"
)

// Settings is the resolved configuration of a single invocation.
type Settings struct {
	ProjectDirectory     string        `yaml:"project_directory"`
	BuildDirectory       string        `yaml:"build_directory"`
	Pattern              string        `yaml:"pattern"`
	ExpectedNumberOfRpms int           `yaml:"expected_number_of_rpms"`
	Version              string        `yaml:"version"`
	Username             string        `yaml:"username"`
	Password             string        `yaml:"password"` // Inline, ${ENV_VAR}, or file path
	RepositoryURL        string        `yaml:"repository_url"`
	SnapshotURL          string        `yaml:"snapshot_repository_url"`
	Timeout              time.Duration `yaml:"timeout"`
	FailOnRejection      bool          `yaml:"fail_on_rejection"`

	// Alternative key spellings, folded into the fields above on load.
	RPMRepositoryURL         string `yaml:"rpm_repository_url"`
	SnapshotRPMRepositoryURL string `yaml:"snapshot_rpm_repository_url"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns settings with every default applied.
func NewDefaultSettings() *Settings {
	return &Settings{
		ProjectDirectory:     ".",
		BuildDirectory:       DefaultBuildDirectory,
		Pattern:              DefaultPattern,
		ExpectedNumberOfRpms: 1,
		Timeout:              DefaultTimeout,
	}
}

// NewSettings reads the YAML file at path on top of the defaults, expanding
// environment variables and resolving the password file path.
// An empty path yields the defaults.
func NewSettings(path string) (*Settings, error) {
	settings := NewDefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.ProjectDirectory = expandEnv(settings.ProjectDirectory)
	settings.BuildDirectory = expandEnv(settings.BuildDirectory)
	settings.Version = expandEnv(settings.Version)
	settings.Username = expandEnv(settings.Username)
	settings.Password = resolveSecret(settings.Password)
	settings.RepositoryURL = expandEnv(settings.RepositoryURL)
	settings.SnapshotURL = expandEnv(settings.SnapshotURL)
	settings.RPMRepositoryURL = expandEnv(settings.RPMRepositoryURL)
	settings.SnapshotRPMRepositoryURL = expandEnv(settings.SnapshotRPMRepositoryURL)
	settings.foldAliases()

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".rpmdeploy.yaml",
		".rpmdeploy.yml",
		"rpmdeploy.yaml",
		"rpmdeploy.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ApplyEnvironment overrides settings with the deploy environment variables
// that are set.
func (s *Settings) ApplyEnvironment() error {
	if v := os.Getenv("NEXUS_USERNAME"); v != "" {
		s.Username = v
	}
	if v := os.Getenv("NEXUS_PASSWORD"); v != "" {
		s.Password = v
	}
	if v := os.Getenv("RPMDEPLOY_REPOSITORY_URL"); v != "" {
		s.RepositoryURL = v
	}
	if v := os.Getenv("RPMDEPLOY_SNAPSHOT_REPOSITORY_URL"); v != "" {
		s.SnapshotURL = v
	}
	if v := os.Getenv("RPMDEPLOY_PROJECT_VERSION"); v != "" {
		s.Version = v
	}
	if v := os.Getenv("RPMDEPLOY_EXPECTED_RPMS"); v != "" {
		expected, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RPMDEPLOY_EXPECTED_RPMS must be an integer, got %q", v)
		}
		s.ExpectedNumberOfRpms = expected
	}
	return nil
}

// Finalize applies remaining defaults, falls back to the pom.xml version and
// validates the result.
func (s *Settings) Finalize() error {
	s.foldAliases()
	if s.ProjectDirectory == "" {
		s.ProjectDirectory = "."
	}
	if s.BuildDirectory == "" {
		s.BuildDirectory = DefaultBuildDirectory
	}
	if s.Pattern == "" {
		s.Pattern = DefaultPattern
	}

	if s.Version == "" {
		pomPath := filepath.Join(s.ProjectDirectory, "pom.xml")
		version, err := readPomVersion(pomPath)
		switch {
		case err == nil:
			logger.Debugf("Read project version %q from %s", version, pomPath)
			s.Version = version
		case !errors.Is(err, os.ErrNotExist):
			return err
		}
	}

	return validate(s)
}

// foldAliases moves the rpm_* key spellings into the canonical fields.
// The rpm_* spelling wins when a file sets both.
func (s *Settings) foldAliases() {
	if s.RPMRepositoryURL != "" {
		s.RepositoryURL = s.RPMRepositoryURL
		s.RPMRepositoryURL = ""
	}
	if s.SnapshotRPMRepositoryURL != "" {
		s.SnapshotURL = s.SnapshotRPMRepositoryURL
		s.SnapshotRPMRepositoryURL = ""
	}
}

// ArtifactDirectory is the directory scanned for artifacts.
func (s *Settings) ArtifactDirectory() string {
	buildDir := s.BuildDirectory
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(s.ProjectDirectory, buildDir)
	}
	return filepath.Join(buildDir, artifactSubdirectory)
}

// Repository returns the upload destination described by the settings.
func (s *Settings) Repository() RepositoryConfig {
	return RepositoryConfig{
		ReleaseURL:  s.RepositoryURL,
		SnapshotURL: s.SnapshotURL,
		Credentials: Credentials{
			Username: s.Username,
			Password: s.Password,
		},
	}
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// resolveSecret expands environment variable references and, if the
// resulting string is a path to an existing file, reads the secret from it.
func resolveSecret(raw string) string {
	resolved := expandEnv(raw)
	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read password from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(s *Settings) error {
	if s.RepositoryURL == "" {
		return errors.New("repository_url is required (set it in the config file, via --repository-url " +
			"or RPMDEPLOY_REPOSITORY_URL)")
	}
	if s.Username == "" {
		return errors.New("username is required (set it in the config file, via --username or NEXUS_USERNAME)")
	}
	if s.Password == "" {
		return errors.New("password is required (set it inline, via ${ENV_VAR}, as file path, " +
			"via --password or NEXUS_PASSWORD)")
	}
	if s.ExpectedNumberOfRpms < 0 {
		return fmt.Errorf("expected_number_of_rpms must not be negative, got %d", s.ExpectedNumberOfRpms)
	}
	if s.Version == "" {
		return errors.New("project version is required (set --project-version or provide a pom.xml)")
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", s.Timeout)
	}
	return nil
}

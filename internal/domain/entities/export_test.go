package entities

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export

// ResolveSecret exports resolveSecret for testing.
var ResolveSecret = resolveSecret //nolint:gochecknoglobals // test export

// ReadPomVersion exports readPomVersion for testing.
var ReadPomVersion = readPomVersion //nolint:gochecknoglobals // test export

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export

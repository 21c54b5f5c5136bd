package messages

// Config messages for tool configuration loading and validation.
const (
	// ConfigLoadFileFmt formats config file load errors.
	ConfigLoadFileFmt       = "failed to load %s config %s: %w"
	ConfigInvalidYAMLFmt    = "invalid YAML in %s: %w"
	ConfigLoadEnvFmt        = "failed to load environment config: %w"
	ConfigUnmarshalFmt      = "failed to unmarshal config: %w"
	ConfigEmptyPackageFmt   = "%s: dev_packages[%d] must not be empty"
	ConfigNoPackagesFmt     = "%s: dev_packages must list at least one package"
	ConfigBinaryRequiredFmt = "%s: %s must not be empty"
	ConfigResolveHomeFmt    = "resolve home dir: %w"
)

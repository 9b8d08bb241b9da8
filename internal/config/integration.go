package config

import "sync"

// GlobalConfig holds the process-wide configuration instance.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig

// InitGlobalConfig loads the global configuration once.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if GlobalConfig == nil {
		GlobalConfig = New()
	}
}

// SetGlobalConfig replaces the global configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	GlobalConfig = cfg
}

// ResetGlobalConfigForTest drops the global config so the next call reloads it.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return GlobalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetOutputFormat returns flagValue when set, otherwise the configured default.
func GetOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetDefaultOutputFormat()
}

// GetLoggingConfig returns a copy of the logging section. Callers apply
// flag overrides such as --debug on the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

package config

// Config aggregates all module configuration. Load it once at startup.
type Config struct {
	Pipeline PipelineConfig
}

// Load reads the full configuration from the environment.
func Load() *Config {
	return &Config{
		Pipeline: loadPipelineConfig(),
	}
}

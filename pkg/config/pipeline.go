package config

import "time"

// PipelineConfig configures one roster adjustment run.
type PipelineConfig struct {
	DataDir     string
	RosterFile  string
	Prompt      string
	JoinTimeout time.Duration
	Notifier    string
}

func loadPipelineConfig() PipelineConfig {
	return PipelineConfig{
		DataDir:     getEnv("PIPELINE_DATA_DIR", "./data"),
		RosterFile:  getEnv("PIPELINE_ROSTER_FILE", "roster.csv"),
		Prompt:      getEnv("PIPELINE_PROMPT", ""),
		JoinTimeout: getEnvDuration("PIPELINE_JOIN_TIMEOUT", 0),
		Notifier:    getEnv("PIPELINE_NOTIFIER", "console"),
	}
}

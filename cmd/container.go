// cmd/container.go
//
// Root composition root. Owns infrastructure (file system, prompt,
// notifications) and wires the pipeline. This is the only place that knows
// about ALL modules.
package main

import (
	"github.com/Abraxas-365/agepipe/pkg/agex"
	"github.com/Abraxas-365/agepipe/pkg/config"
	"github.com/Abraxas-365/agepipe/pkg/fsx"
	"github.com/Abraxas-365/agepipe/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/agepipe/pkg/logx"
	"github.com/Abraxas-365/agepipe/pkg/notifx"
	"github.com/Abraxas-365/agepipe/pkg/notifx/notifxconsole"
	"github.com/Abraxas-365/agepipe/pkg/promptx"
)

// Container holds shared infrastructure and the wired pipeline.
type Container struct {
	Config *config.Config

	// Infrastructure
	FileSystem fsx.FileSystem
	Store      *agex.RosterStore
	Prompt     promptx.AdjustmentReader
	Notifier   notifx.Notifier

	// Pipeline
	Pipeline *agex.Pipeline
}

func NewContainer(cfg *config.Config) *Container {
	logx.Info("🔧 Initializing application container...")

	c := &Container{Config: cfg}

	c.initInfrastructure()
	c.initPipeline()

	logx.Info("✅ Application container initialized")
	return c
}

// ---------------------------------------------------------------------------
// Infrastructure — file storage, prompt, notifications
// ---------------------------------------------------------------------------

func (c *Container) initInfrastructure() {
	logx.Info("🏗️ Initializing infrastructure...")

	// 1. File storage
	localFS, err := fsxlocal.NewLocalFileSystem(c.Config.Pipeline.DataDir)
	if err != nil {
		logx.Fatalf("Failed to initialize local file system: %v", err)
	}
	c.FileSystem = localFS
	c.Store = agex.NewRosterStore(localFS, c.Config.Pipeline.RosterFile)
	logx.Infof("  ✅ Local file system configured (path: %s)", localFS.GetBasePath())

	// 2. Prompt
	promptOpts := []promptx.ConsoleOption{}
	if c.Config.Pipeline.Prompt != "" {
		promptOpts = append(promptOpts, promptx.WithPrompt(c.Config.Pipeline.Prompt))
	}
	c.Prompt = promptx.NewConsole(promptOpts...)
	logx.Info("  ✅ Console prompt configured")

	// 3. Notifications
	switch c.Config.Pipeline.Notifier {
	case "console":
		c.Notifier = notifx.NewClient(notifxconsole.NewConsoleProvider())
		logx.Info("  ✅ Console notifier configured")
	case "none":
		c.Notifier = notifx.Discard
		logx.Info("  ✅ Notifications disabled")
	default:
		logx.Fatalf("Unknown PIPELINE_NOTIFIER: %s (use 'console' or 'none')", c.Config.Pipeline.Notifier)
	}

	logx.Info("✅ Infrastructure initialized")
}

// ---------------------------------------------------------------------------
// Pipeline composition
// ---------------------------------------------------------------------------

func (c *Container) initPipeline() {
	logx.Info("📦 Initializing pipeline...")

	opts := []agex.Option{}
	if c.Config.Pipeline.JoinTimeout > 0 {
		opts = append(opts, agex.WithJoinTimeout(c.Config.Pipeline.JoinTimeout))
	}

	c.Pipeline = agex.New(c.Store, c.Store, c.Prompt, c.Notifier, opts...)
	logx.Infof("  ✅ Pipeline wired (roster: %s)", c.Store.Path())
}

package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/Abraxas-365/agepipe/pkg/config"
	"github.com/Abraxas-365/agepipe/pkg/errx"
	"github.com/Abraxas-365/agepipe/pkg/logx"
	"github.com/Abraxas-365/agepipe/pkg/recordx"
)

func main() {
	// 1. Load .env (optional, environment wins)
	_ = godotenv.Load()

	// 2. Initialize Logger
	logLevel := getEnv("LOG_LEVEL", "info")
	switch logLevel {
	case "debug":
		logx.SetLevel(logx.LevelDebug)
	case "warn":
		logx.SetLevel(logx.LevelWarn)
	case "error":
		logx.SetLevel(logx.LevelError)
	default:
		logx.SetLevel(logx.LevelInfo)
	}

	logx.Info("🚀 Starting roster age adjustment...")

	// 3. Load configuration and build the container
	cfg := config.Load()
	container := NewContainer(cfg)

	// 4. Run the pipeline
	report, err := container.Pipeline.Run(context.Background())
	if err != nil {
		reportFailure(err)
		os.Exit(1)
	}

	// 5. Print the outcome
	printReport(report.Records)

	color.New(color.FgGreen, color.Bold).Printf(
		"✅ Adjusted %d record(s) by %+d (run %s)\n",
		report.Written, report.Adjustment, report.RunID,
	)
}

// ============================================================================
// Output
// ============================================================================

// printReport renders the adjusted roster as a table.
func printReport(records []recordx.Record) {
	if len(records) == 0 {
		logx.Warn("Roster is empty, nothing to adjust")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("First Name", "Last Name", "Age")
	for _, r := range records {
		_ = table.Append(r.FirstName, r.LastName, r.Age)
	}
	_ = table.Render()
}

// reportFailure logs the failure with its code when it is one of ours.
func reportFailure(err error) {
	var e *errx.Error
	if errx.As(err, &e) {
		logx.WithFields(logx.Fields{
			"code": e.Code,
			"type": string(e.Type),
		}).WithError(err).Error("Run failed")
	} else {
		logx.WithError(err).Error("Run failed")
	}
	color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "❌ Run failed:", err)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package notifxconsole

import (
	"context"

	"github.com/Abraxas-365/agepipe/pkg/kernel"
	"github.com/Abraxas-365/agepipe/pkg/logx"
	"github.com/Abraxas-365/agepipe/pkg/notifx"
)

// ConsoleProvider prints adjustment notices to the terminal via logx.
type ConsoleProvider struct{}

// NewConsoleProvider creates a new console notice provider.
func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

// NotifyAdjusted logs the notice instead of delivering it anywhere.
func (p *ConsoleProvider) NotifyAdjusted(ctx context.Context, notice notifx.AdjustmentNotice) error {
	entry := logx.WithFields(logx.Fields{
		"name":    notice.FullName(),
		"old_age": notice.OldAge,
		"new_age": notice.NewAge,
	})
	if runID, ok := kernel.RunIDFromContext(ctx); ok {
		entry = entry.WithField("run_id", runID.String())
	}
	entry.Info("notifx/console: age adjusted")
	return nil
}

var _ notifx.Notifier = (*ConsoleProvider)(nil)

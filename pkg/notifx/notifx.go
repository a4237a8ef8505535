package notifx

import (
	"context"
)

// Notifier emits one notice per adjusted record.
type Notifier interface {
	NotifyAdjusted(ctx context.Context, notice AdjustmentNotice) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, notice AdjustmentNotice) error

// NotifyAdjusted calls f.
func (f NotifierFunc) NotifyAdjusted(ctx context.Context, notice AdjustmentNotice) error {
	return f(ctx, notice)
}

// Discard swallows every notice. Useful when a caller wants the pipeline
// without its side channel.
var Discard Notifier = NotifierFunc(func(context.Context, AdjustmentNotice) error {
	return nil
})

// Client is the main entry point for emitting adjustment notices.
type Client struct {
	provider  Notifier
	templates *TemplateRegistry
}

// NewClient creates a new notification client.
func NewClient(provider Notifier) *Client {
	return &Client{
		provider:  provider,
		templates: NewTemplateRegistry(),
	}
}

// NotifyAdjusted validates the notice and forwards it to the provider.
func (c *Client) NotifyAdjusted(ctx context.Context, notice AdjustmentNotice) error {
	if notice.FirstName == "" && notice.LastName == "" {
		return notifxErrors.New(ErrInvalidNotice).WithDetail("reason", "no subject name")
	}
	return c.provider.NotifyAdjusted(ctx, notice)
}

// RegisterTemplate parses and stores a named notice template for later use.
func (c *Client) RegisterTemplate(name, tmplString string) error {
	return c.templates.Register(name, tmplString)
}

// RenderNotice renders a notice through a registered template.
func (c *Client) RenderNotice(templateName string, notice AdjustmentNotice) (string, error) {
	return c.templates.Render(templateName, notice)
}

package notifx

import "github.com/Abraxas-365/agepipe/pkg/errx"

var notifxErrors = errx.NewRegistry("NOTIFX")

var (
	ErrNotifyFailed     = notifxErrors.Register("NOTIFY_FAILED", errx.TypeExternal, "Failed to emit notification")
	ErrInvalidNotice    = notifxErrors.Register("INVALID_NOTICE", errx.TypeValidation, "Invalid adjustment notice")
	ErrTemplateNotFound = notifxErrors.Register("TEMPLATE_NOT_FOUND", errx.TypeNotFound, "Notice template not found")
	ErrTemplateParse    = notifxErrors.Register("TEMPLATE_PARSE", errx.TypeValidation, "Failed to parse notice template")
	ErrTemplateRender   = notifxErrors.Register("TEMPLATE_RENDER", errx.TypeInternal, "Failed to render notice template")
)

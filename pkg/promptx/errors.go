package promptx

import "github.com/Abraxas-365/agepipe/pkg/errx"

var promptxErrors = errx.NewRegistry("PROMPTX")

var (
	ErrInvalidInput = promptxErrors.Register("INVALID_INPUT", errx.TypeValidation, "Adjustment is not an integer")
	ErrReadFailed   = promptxErrors.Register("READ_FAILED", errx.TypeExternal, "Failed to read adjustment input")
)

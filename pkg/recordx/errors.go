package recordx

import "github.com/Abraxas-365/agepipe/pkg/errx"

var recordxErrors = errx.NewRegistry("RECORDX")

var (
	ErrMalformedRecord = recordxErrors.Register("MALFORMED_RECORD", errx.TypeValidation, "Malformed roster record")
)

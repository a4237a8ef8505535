package asyncx

import "github.com/Abraxas-365/agepipe/pkg/errx"

var asyncxErrors = errx.NewRegistry("ASYNCX")

var (
	ErrAwaitTimeout = asyncxErrors.Register("AWAIT_TIMEOUT", errx.TypeTimeout, "Timed out waiting for async value")
)

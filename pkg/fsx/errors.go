package fsx

import "github.com/Abraxas-365/agepipe/pkg/errx"

var fsxErrors = errx.NewRegistry("FSX")

var (
	ErrNotFound    = fsxErrors.Register("NOT_FOUND", errx.TypeNotFound, "File not found")
	ErrReadFailed  = fsxErrors.Register("READ_FAILED", errx.TypeExternal, "Failed to read file")
	ErrWriteFailed = fsxErrors.Register("WRITE_FAILED", errx.TypeExternal, "Failed to write file")
	ErrStatFailed  = fsxErrors.Register("STAT_FAILED", errx.TypeExternal, "Failed to stat file")
)

// Registry exposes the fsx error registry so implementations outside this
// package can mint the same codes.
func Registry() *errx.Registry {
	return fsxErrors
}

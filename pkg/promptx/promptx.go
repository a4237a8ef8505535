// Package promptx supplies the run's adjustment value: a single signed
// integer obtained from an interactive prompt or an equivalent reader.
package promptx

import "context"

// AdjustmentReader obtains one integer adjustment per run.
type AdjustmentReader interface {
	ReadAdjustment(ctx context.Context) (int, error)
}

// AdjustmentReaderFunc adapts a function to the AdjustmentReader interface.
type AdjustmentReaderFunc func(ctx context.Context) (int, error)

// ReadAdjustment calls f.
func (f AdjustmentReaderFunc) ReadAdjustment(ctx context.Context) (int, error) {
	return f(ctx)
}

// Fixed returns a reader that always yields n. Useful in tests and
// non-interactive runs.
func Fixed(n int) AdjustmentReader {
	return AdjustmentReaderFunc(func(context.Context) (int, error) {
		return n, nil
	})
}

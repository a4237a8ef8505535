package asyncx

import (
	"sync"
	"time"
)

// result holds the outcome of an async computation.
type result[T any] struct {
	value T
	err   error
}

// Promise is the producer side of an asynchronously completed value.
// It starts pending and transitions to completed (success or failure)
// at most once; the outcome is fixed forever after. Create one with
// NewPromise and hand out its Future to consumers.
type Promise[T any] struct {
	mu        sync.Mutex
	done      bool
	res       result[T]
	callbacks []func(T, error)
	ch        chan struct{} // closed exactly once, on completion
}

// NewPromise creates a pending promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{ch: make(chan struct{})}
}

// Complete settles the promise with a success value. Reports whether this
// call won the transition; a promise that already completed is unchanged.
func (p *Promise[T]) Complete(value T) bool {
	return p.settle(result[T]{value: value})
}

// Fail settles the promise with a failure. Reports whether this call won
// the transition.
func (p *Promise[T]) Fail(err error) bool {
	return p.settle(result[T]{err: err})
}

func (p *Promise[T]) settle(r result[T]) bool {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		return false
	}
	p.done = true
	p.res = r
	callbacks := p.callbacks
	p.callbacks = nil
	close(p.ch)
	p.mu.Unlock()

	// Callbacks run outside the lock, on the completing goroutine,
	// in registration order. Each registered callback fires exactly once.
	for _, cb := range callbacks {
		cb(r.value, r.err)
	}
	return true
}

// Future returns the consumer view of the promise.
func (p *Promise[T]) Future() *Future[T] {
	return &Future[T]{p: p}
}

// Future represents a value that will be available asynchronously.
// Consume it with Await, AwaitTimeout or OnComplete; only the owning
// Promise (or Run's goroutine) can complete it.
type Future[T any] struct {
	p *Promise[T]
}

// Run executes fn in a goroutine and returns a Future for its result.
// The goroutine starts immediately.
func Run[T any](fn func() (T, error)) *Future[T] {
	p := NewPromise[T]()
	go func() {
		v, err := fn()
		if err != nil {
			p.Fail(err)
			return
		}
		p.Complete(v)
	}()
	return p.Future()
}

// Completed returns an already-successful Future. Useful in tests and as
// a neutral element when composing joins.
func Completed[T any](value T) *Future[T] {
	p := NewPromise[T]()
	p.Complete(value)
	return p.Future()
}

// Failed returns an already-failed Future.
func Failed[T any](err error) *Future[T] {
	p := NewPromise[T]()
	p.Fail(err)
	return p.Future()
}

// Await blocks until the Future completes and returns its value and error.
// Safe to call multiple times and from multiple goroutines — every call
// returns the same settled outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.p.ch
	return f.p.res.value, f.p.res.err
}

// AwaitTimeout is Await with a bound. When the bound is exceeded it returns
// ErrAwaitTimeout, which is distinct from any failure the producer itself
// may later settle the value with. The producer keeps running either way.
func (f *Future[T]) AwaitTimeout(d time.Duration) (T, error) {
	select {
	case <-f.p.ch:
		return f.p.res.value, f.p.res.err
	case <-time.After(d):
		var zero T
		return zero, asyncxErrors.New(ErrAwaitTimeout).WithDetail("timeout", d.String())
	}
}

// OnComplete registers fn to be invoked exactly once with the final outcome.
// If the Future is still pending, fn runs later on the completing goroutine;
// if it has already completed, fn runs synchronously on the caller.
func (f *Future[T]) OnComplete(fn func(T, error)) {
	p := f.p
	p.mu.Lock()
	if p.done {
		r := p.res
		p.mu.Unlock()
		fn(r.value, r.err)
		return
	}
	p.callbacks = append(p.callbacks, fn)
	p.mu.Unlock()
}

// Done reports whether the Future has completed, without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.p.ch:
		return true
	default:
		return false
	}
}

package asyncx

import "sync"

// Join combines two independently progressing Futures into one downstream
// action. onBoth is invoked exactly once, with both values, only after both
// inputs have completed successfully — never before, regardless of which
// side finishes first. The joined Future settles with onBoth's outcome.
//
// If either input fails, the joined Future fails with that error and onBoth
// is never invoked. When both inputs fail, the failure that arrives first
// wins and the later one is dropped.
func Join[A, B, R any](a *Future[A], b *Future[B], onBoth func(A, B) *Future[R]) *Future[R] {
	p := NewPromise[R]()

	// Rendezvous state. Both completion callbacks run on independently
	// scheduled goroutines, so every read and write goes through mu.
	var (
		mu      sync.Mutex
		aVal    A
		bVal    B
		aDone   bool
		bDone   bool
		settled bool // set by whichever callback triggers combination or failure
	)

	fail := func(err error) {
		mu.Lock()
		if settled {
			mu.Unlock()
			return
		}
		settled = true
		mu.Unlock()
		p.Fail(err)
	}

	combine := func(va A, vb B) {
		onBoth(va, vb).OnComplete(func(r R, err error) {
			if err != nil {
				p.Fail(err)
				return
			}
			p.Complete(r)
		})
	}

	a.OnComplete(func(v A, err error) {
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		aVal = v
		aDone = true
		ready := aDone && bDone && !settled
		if ready {
			settled = true
		}
		va, vb := aVal, bVal
		mu.Unlock()
		if ready {
			combine(va, vb)
		}
	})

	b.OnComplete(func(v B, err error) {
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		bVal = v
		bDone = true
		ready := aDone && bDone && !settled
		if ready {
			settled = true
		}
		va, vb := aVal, bVal
		mu.Unlock()
		if ready {
			combine(va, vb)
		}
	})

	return p.Future()
}

// Zip is the value-level special case of Join: it waits for both inputs
// and yields the pair.
func Zip[A, B any](a *Future[A], b *Future[B]) *Future[Pair[A, B]] {
	return Join(a, b, func(va A, vb B) *Future[Pair[A, B]] {
		return Completed(Pair[A, B]{First: va, Second: vb})
	})
}

// Pair holds two values joined from independent sources.
type Pair[A, B any] struct {
	First  A
	Second B
}

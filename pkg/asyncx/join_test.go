package asyncx_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Abraxas-365/agepipe/pkg/asyncx"
)

func joinSum(a *asyncx.Future[int], b *asyncx.Future[int]) *asyncx.Future[int] {
	return asyncx.Join(a, b, func(x, y int) *asyncx.Future[int] {
		return asyncx.Completed(x + y)
	})
}

func TestJoin_OrderIndependence(t *testing.T) {
	// a-then-b
	pa, pb := asyncx.NewPromise[int](), asyncx.NewPromise[int]()
	joined := joinSum(pa.Future(), pb.Future())
	pa.Complete(2)
	pb.Complete(3)
	if v, err := joined.Await(); err != nil || v != 5 {
		t.Fatalf("a-then-b: expected 5, got %d (err=%v)", v, err)
	}

	// b-then-a
	pa, pb = asyncx.NewPromise[int](), asyncx.NewPromise[int]()
	joined = joinSum(pa.Future(), pb.Future())
	pb.Complete(3)
	pa.Complete(2)
	if v, err := joined.Await(); err != nil || v != 5 {
		t.Fatalf("b-then-a: expected 5, got %d (err=%v)", v, err)
	}
}

func TestJoin_WaitsForBothSides(t *testing.T) {
	pa, pb := asyncx.NewPromise[int](), asyncx.NewPromise[int]()

	var invoked atomic.Bool
	joined := asyncx.Join(pa.Future(), pb.Future(), func(x, y int) *asyncx.Future[int] {
		invoked.Store(true)
		return asyncx.Completed(x + y)
	})

	pa.Complete(1)
	time.Sleep(20 * time.Millisecond)
	if invoked.Load() {
		t.Fatal("combination ran with only one side present")
	}

	pb.Complete(1)
	if _, err := joined.Await(); err != nil {
		t.Fatal(err)
	}
	if !invoked.Load() {
		t.Fatal("combination never ran")
	}
}

func TestJoin_SingleInvocationUnderRace(t *testing.T) {
	for i := 0; i < 100; i++ {
		pa, pb := asyncx.NewPromise[int](), asyncx.NewPromise[int]()

		var calls int64
		joined := asyncx.Join(pa.Future(), pb.Future(), func(x, y int) *asyncx.Future[int] {
			atomic.AddInt64(&calls, 1)
			return asyncx.Completed(x + y)
		})

		// Both sides complete simultaneously from independent goroutines.
		go pa.Complete(1)
		go pb.Complete(2)

		if v, err := joined.Await(); err != nil || v != 3 {
			t.Fatalf("expected 3, got %d (err=%v)", v, err)
		}
		if got := atomic.LoadInt64(&calls); got != 1 {
			t.Fatalf("combination invoked %d times, want exactly 1", got)
		}
	}
}

func TestJoin_FailureShortCircuits(t *testing.T) {
	want := errors.New("source broke")
	pa, pb := asyncx.NewPromise[int](), asyncx.NewPromise[int]()

	var invoked atomic.Bool
	joined := asyncx.Join(pa.Future(), pb.Future(), func(x, y int) *asyncx.Future[int] {
		invoked.Store(true)
		return asyncx.Completed(0)
	})

	pa.Fail(want)
	if _, err := joined.Await(); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}

	// The other side finishing later must not resurrect the combination.
	pb.Complete(4)
	time.Sleep(20 * time.Millisecond)
	if invoked.Load() {
		t.Fatal("combination ran despite a failed input")
	}
}

func TestJoin_BothFail_FirstWins(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	pa, pb := asyncx.NewPromise[int](), asyncx.NewPromise[int]()
	joined := joinSum(pa.Future(), pb.Future())

	pa.Fail(errA)
	_, err := joined.Await() // joined settles as soon as the first failure lands
	pb.Fail(errB)

	if !errors.Is(err, errA) {
		t.Fatalf("expected first failure to win, got %v", err)
	}
}

func TestJoin_CombinationFailurePropagates(t *testing.T) {
	want := errors.New("write failed")

	joined := asyncx.Join(asyncx.Completed(1), asyncx.Completed(2), func(x, y int) *asyncx.Future[int] {
		return asyncx.Failed[int](want)
	})

	if _, err := joined.Await(); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestZip_PairsValues(t *testing.T) {
	pair, err := asyncx.Zip(asyncx.Completed("lines"), asyncx.Completed(2)).Await()
	if err != nil {
		t.Fatal(err)
	}
	if pair.First != "lines" || pair.Second != 2 {
		t.Fatalf("unexpected pair: %+v", pair)
	}
}

package agex_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Abraxas-365/agepipe/pkg/agex"
	"github.com/Abraxas-365/agepipe/pkg/asyncx"
	"github.com/Abraxas-365/agepipe/pkg/errx"
	"github.com/Abraxas-365/agepipe/pkg/notifx"
	"github.com/Abraxas-365/agepipe/pkg/promptx"
	"github.com/Abraxas-365/agepipe/pkg/recordx"
)

type sourceFunc func(ctx context.Context) ([]string, error)

func (f sourceFunc) ReadLines(ctx context.Context) ([]string, error) { return f(ctx) }

type sinkFunc func(ctx context.Context, lines []string) error

func (f sinkFunc) WriteLines(ctx context.Context, lines []string) error { return f(ctx, lines) }

func fixedSource(lines ...string) agex.LineSource {
	return sourceFunc(func(context.Context) ([]string, error) { return lines, nil })
}

type captureSink struct {
	calls int32
	lines []string
}

func (s *captureSink) WriteLines(_ context.Context, lines []string) error {
	atomic.AddInt32(&s.calls, 1)
	s.lines = lines
	return nil
}

type captureNotifier struct {
	notices []notifx.AdjustmentNotice
}

func (n *captureNotifier) NotifyAdjusted(_ context.Context, notice notifx.AdjustmentNotice) error {
	n.notices = append(n.notices, notice)
	return nil
}

func TestPipelineRun(t *testing.T) {
	sink := &captureSink{}
	notifier := &captureNotifier{}
	p := agex.New(
		fixedSource("Ada,Lovelace,36", "Alan,Turing,41", "Grace,Hopper,85"),
		sink,
		promptx.Fixed(2),
		notifier,
	)

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.RunID.IsEmpty() {
		t.Fatal("expected a run ID")
	}
	if report.Adjustment != 2 {
		t.Fatalf("report adjustment = %d, want 2", report.Adjustment)
	}
	if report.Written != 3 {
		t.Fatalf("report written = %d, want 3", report.Written)
	}

	want := []string{"Ada,Lovelace,38", "Alan,Turing,43", "Grace,Hopper,87"}
	if len(sink.lines) != len(want) {
		t.Fatalf("sink got %d lines, want %d", len(sink.lines), len(want))
	}
	for i, line := range want {
		if sink.lines[i] != line {
			t.Fatalf("sink line %d = %q, want %q", i, sink.lines[i], line)
		}
	}

	if len(notifier.notices) != 3 {
		t.Fatalf("expected 3 notices, got %d", len(notifier.notices))
	}
	first := notifier.notices[0]
	if first.FirstName != "Ada" || first.OldAge != 36 || first.NewAge != 38 {
		t.Fatalf("unexpected first notice: %+v", first)
	}
}

func TestPipelineRunNegativeAdjustment(t *testing.T) {
	sink := &captureSink{}
	p := agex.New(
		fixedSource("Aragorn,Elessar,87", "Frodo,Baggins,50"),
		sink,
		promptx.Fixed(-2),
		notifx.Discard,
	)

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []recordx.Record{
		{FirstName: "Aragorn", LastName: "Elessar", Age: 85},
		{FirstName: "Frodo", LastName: "Baggins", Age: 48},
	}
	if len(report.Records) != len(want) {
		t.Fatalf("got %d records, want %d", len(report.Records), len(want))
	}
	for i, r := range want {
		if report.Records[i] != r {
			t.Fatalf("record %d = %+v, want %+v", i, report.Records[i], r)
		}
	}
}

func TestPipelineRunEmptyRoster(t *testing.T) {
	sink := &captureSink{}
	p := agex.New(fixedSource(), sink, promptx.Fixed(5), notifx.Discard)

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Written != 0 {
		t.Fatalf("report written = %d, want 0", report.Written)
	}
	if atomic.LoadInt32(&sink.calls) != 1 {
		t.Fatalf("sink calls = %d, want 1", sink.calls)
	}
	if len(sink.lines) != 0 {
		t.Fatalf("expected empty write, got %#v", sink.lines)
	}
}

func TestPipelineRunFetchesConcurrently(t *testing.T) {
	// Unbuffered handshake between the two legs: it only completes when
	// both run at the same time.
	handshake := make(chan struct{})

	sink := &captureSink{}
	p := agex.New(
		sourceFunc(func(context.Context) ([]string, error) {
			select {
			case handshake <- struct{}{}:
			case <-time.After(2 * time.Second):
				return nil, errors.New("prompt leg never started")
			}
			return []string{"Ada,Lovelace,36"}, nil
		}),
		sink,
		promptx.AdjustmentReaderFunc(func(context.Context) (int, error) {
			select {
			case <-handshake:
			case <-time.After(2 * time.Second):
				return 0, errors.New("source leg never started")
			}
			return 1, nil
		}),
		notifx.Discard,
	)

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestPipelineRunMalformedRecord(t *testing.T) {
	sink := &captureSink{}
	p := agex.New(
		fixedSource("Ada,Lovelace,36", "Alan,Turing"),
		sink,
		promptx.Fixed(2),
		notifx.Discard,
	)

	_, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected malformed record error")
	}
	if !errx.IsCode(err, recordx.ErrMalformedRecord.Code) {
		t.Fatalf("expected %s, got %v", recordx.ErrMalformedRecord.Code, err)
	}
	if atomic.LoadInt32(&sink.calls) != 0 {
		t.Fatal("sink must not be invoked on parse failure")
	}
}

func TestPipelineRunPromptFailure(t *testing.T) {
	promptErr := errors.New("stdin closed")
	sink := &captureSink{}
	p := agex.New(
		fixedSource("Ada,Lovelace,36"),
		sink,
		promptx.AdjustmentReaderFunc(func(context.Context) (int, error) {
			return 0, promptErr
		}),
		notifx.Discard,
	)

	_, err := p.Run(context.Background())
	if !errors.Is(err, promptErr) {
		t.Fatalf("expected prompt error, got %v", err)
	}
	if atomic.LoadInt32(&sink.calls) != 0 {
		t.Fatal("sink must not be invoked on prompt failure")
	}
}

func TestPipelineRunSourceFailure(t *testing.T) {
	sourceErr := errors.New("disk gone")
	sink := &captureSink{}
	p := agex.New(
		sourceFunc(func(context.Context) ([]string, error) { return nil, sourceErr }),
		sink,
		promptx.Fixed(2),
		notifx.Discard,
	)

	_, err := p.Run(context.Background())
	if !errors.Is(err, sourceErr) {
		t.Fatalf("expected source error, got %v", err)
	}
	if atomic.LoadInt32(&sink.calls) != 0 {
		t.Fatal("sink must not be invoked on source failure")
	}
}

func TestPipelineRunNotifierFailure(t *testing.T) {
	notifyErr := errors.New("channel down")
	sink := &captureSink{}
	p := agex.New(
		fixedSource("Ada,Lovelace,36"),
		sink,
		promptx.Fixed(2),
		notifx.NotifierFunc(func(context.Context, notifx.AdjustmentNotice) error {
			return notifyErr
		}),
	)

	_, err := p.Run(context.Background())
	if !errors.Is(err, notifyErr) {
		t.Fatalf("expected notifier error, got %v", err)
	}
	if atomic.LoadInt32(&sink.calls) != 0 {
		t.Fatal("sink must not be invoked on notifier failure")
	}
}

func TestPipelineRunSinkFailure(t *testing.T) {
	sinkErr := errors.New("read-only filesystem")
	p := agex.New(
		fixedSource("Ada,Lovelace,36"),
		sinkFunc(func(context.Context, []string) error { return sinkErr }),
		promptx.Fixed(2),
		notifx.Discard,
	)

	_, err := p.Run(context.Background())
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestPipelineRunJoinTimeout(t *testing.T) {
	p := agex.New(
		fixedSource("Ada,Lovelace,36"),
		&captureSink{},
		promptx.AdjustmentReaderFunc(func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		}),
		notifx.Discard,
		agex.WithJoinTimeout(20*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := p.Run(ctx)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errx.IsCode(err, asyncx.ErrAwaitTimeout.Code) {
		t.Fatalf("expected %s, got %v", asyncx.ErrAwaitTimeout.Code, err)
	}
}

func TestPipelineRunIsIdempotentWithZeroAdjustment(t *testing.T) {
	in := []string{"Ada,Lovelace,36", "Alan,Turing,41"}
	sink := &captureSink{}
	p := agex.New(fixedSource(in...), sink, promptx.Fixed(0), notifx.Discard)

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, line := range in {
		if sink.lines[i] != line {
			t.Fatalf("line %d changed under zero adjustment: %q -> %q", i, line, sink.lines[i])
		}
	}
}

package agex

import (
	"context"
	"time"

	"github.com/Abraxas-365/agepipe/pkg/asyncx"
	"github.com/Abraxas-365/agepipe/pkg/kernel"
	"github.com/Abraxas-365/agepipe/pkg/logx"
	"github.com/Abraxas-365/agepipe/pkg/notifx"
	"github.com/Abraxas-365/agepipe/pkg/promptx"
	"github.com/Abraxas-365/agepipe/pkg/recordx"
)

// Report summarizes one successful run.
type Report struct {
	RunID      kernel.RunID
	Adjustment int
	Records    []recordx.Record // adjusted records, in input order
	Written    int              // lines written back to the sink
}

// Pipeline coordinates one roster adjustment run: the roster and the
// adjustment are fetched concurrently, joined, and only then is every age
// transformed and the roster written back. Any failure on either leg is
// terminal and the sink is never touched.
type Pipeline struct {
	source   LineSource
	sink     LineSink
	prompt   promptx.AdjustmentReader
	notifier notifx.Notifier
	opts     Options
}

// Options tune pipeline behavior.
type Options struct {
	// JoinTimeout bounds the wait for the rendezvous of both inputs.
	// Zero means wait forever.
	JoinTimeout time.Duration
}

// Option configures a Pipeline.
type Option func(*Options)

// WithJoinTimeout bounds how long Run waits for both inputs.
func WithJoinTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.JoinTimeout = d
	}
}

// New builds a pipeline from its ports. The notifier may be notifx.Discard
// but must not be nil.
func New(source LineSource, sink LineSink, prompt promptx.AdjustmentReader, notifier notifx.Notifier, options ...Option) *Pipeline {
	p := &Pipeline{
		source:   source,
		sink:     sink,
		prompt:   prompt,
		notifier: notifier,
	}
	for _, opt := range options {
		opt(&p.opts)
	}
	return p
}

// Run executes one full adjustment run and returns its report. The roster
// read and the adjustment prompt start immediately and concurrently;
// neither blocks the other, and the transform only runs once both have
// arrived.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	runID := kernel.NewRunID()
	ctx = kernel.WithRunID(ctx, runID)

	logState(runID, StateFetching, nil)

	rosterFut := asyncx.Run(func() ([]string, error) {
		return p.source.ReadLines(ctx)
	})
	adjustFut := asyncx.Run(func() (int, error) {
		return p.prompt.ReadAdjustment(ctx)
	})

	reportFut := asyncx.Join(rosterFut, adjustFut, func(lines []string, adjustment int) *asyncx.Future[*Report] {
		return asyncx.Run(func() (*Report, error) {
			return p.complete(ctx, runID, lines, adjustment)
		})
	})

	var (
		report *Report
		err    error
	)
	if p.opts.JoinTimeout > 0 {
		report, err = reportFut.AwaitTimeout(p.opts.JoinTimeout)
	} else {
		report, err = reportFut.Await()
	}
	if err != nil {
		logState(runID, StateFailed, err)
		return nil, err
	}

	logState(runID, StateDone, nil)
	return report, nil
}

// complete runs the post-rendezvous half of a run: parse, transform,
// notify, write.
func (p *Pipeline) complete(ctx context.Context, runID kernel.RunID, lines []string, adjustment int) (*Report, error) {
	logState(runID, StateJoined, nil)

	records, err := recordx.ParseAll(lines)
	if err != nil {
		return nil, err
	}

	logState(runID, StateTransforming, nil)

	adjusted := make([]recordx.Record, len(records))
	for i, r := range records {
		nr := Transform(r, adjustment)
		adjusted[i] = nr

		if err := p.notifier.NotifyAdjusted(ctx, notifx.AdjustmentNotice{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			OldAge:    r.Age,
			NewAge:    nr.Age,
		}); err != nil {
			return nil, err
		}
	}

	logState(runID, StateWriting, nil)

	if err := p.sink.WriteLines(ctx, recordx.SerializeAll(adjusted)); err != nil {
		return nil, err
	}

	return &Report{
		RunID:      runID,
		Adjustment: adjustment,
		Records:    adjusted,
		Written:    len(adjusted),
	}, nil
}

func logState(runID kernel.RunID, state RunState, err error) {
	entry := logx.WithFields(logx.Fields{
		"run_id": runID.String(),
		"state":  state.String(),
	})
	if err != nil {
		entry.WithError(err).Error("pipeline run failed")
		return
	}
	entry.Debug("pipeline state changed")
}

package agex

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Abraxas-365/agepipe/pkg/kernel"
)

// rosterMsg and adjustMsg are the two mailbox messages of the
// conversation variant. Each leg reports exactly once, success or not.
type rosterMsg struct {
	lines []string
	err   error
}

type adjustMsg struct {
	value int
	err   error
}

// RunConversation is a channel-based alternative to Run. Instead of
// futures, each input leg runs as its own goroutine and posts one message
// to its mailbox; the coordinator receives from both in completion order
// and proceeds only once both have reported. Semantics are identical to
// Run: a failure on either leg is terminal and the first failure to
// arrive wins.
func (p *Pipeline) RunConversation(ctx context.Context) (*Report, error) {
	runID := kernel.NewRunID()
	ctx = kernel.WithRunID(ctx, runID)

	logState(runID, StateFetching, nil)

	rosterCh := make(chan rosterMsg, 1)
	adjustCh := make(chan adjustMsg, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lines, err := p.source.ReadLines(gctx)
		rosterCh <- rosterMsg{lines: lines, err: err}
		return err
	})
	g.Go(func() error {
		value, err := p.prompt.ReadAdjustment(gctx)
		adjustCh <- adjustMsg{value: value, err: err}
		return err
	})

	var (
		lines      []string
		adjustment int
		firstErr   error
	)
	for i := 0; i < 2; i++ {
		select {
		case m := <-rosterCh:
			lines = m.lines
			if m.err != nil && firstErr == nil {
				firstErr = m.err
			}
		case m := <-adjustCh:
			adjustment = m.value
			if m.err != nil && firstErr == nil {
				firstErr = m.err
			}
		}
	}

	// Both mailboxes have reported, so Wait returns immediately; it only
	// reaps the goroutines.
	_ = g.Wait()

	if firstErr != nil {
		logState(runID, StateFailed, firstErr)
		return nil, firstErr
	}

	report, err := p.complete(ctx, runID, lines, adjustment)
	if err != nil {
		logState(runID, StateFailed, err)
		return nil, err
	}

	logState(runID, StateDone, nil)
	return report, nil
}

package game

import (
	"context"
	"log/slog"
	"time"
)

// DefaultDelay is the pause between two commands of one execution chain.
const DefaultDelay = 300 * time.Millisecond

// Step identifies a pending continuation of an execution chain. The caller
// schedules Resume(step) after the delay.
type Step struct {
	Generation uint64
}

// Execute is the explicit "run the queue" trigger. It applies exactly one
// command and returns a Step when more commands remain. The trigger is
// ignored while the game is idle, while the queue is empty and while a chain
// of the current run is already pending.
func (g *Game) Execute() (Step, bool) {
	if g.chainActive && g.chainGen == g.State.Generation {
		return Step{}, false
	}
	return g.step(g.State.Generation)
}

// Resume continues a chain. Steps scheduled before the latest start or reset
// are discarded.
func (g *Game) Resume(s Step) (Step, bool) {
	if s.Generation != g.State.Generation {
		slog.Debug("stale execution step dropped", "step", s.Generation, "current", g.State.Generation)
		return Step{}, false
	}
	return g.step(s.Generation)
}

// Pending reports whether an execution chain of the current run is waiting
// for its next step.
func (g *Game) Pending() bool {
	return g.chainActive && g.chainGen == g.State.Generation
}

func (g *Game) step(gen uint64) (Step, bool) {
	g.chainActive = false
	if !g.Running() {
		return Step{}, false
	}
	cmd, ok := g.State.Queue.DequeueNext()
	if !ok {
		return Step{}, false
	}

	g.apply(cmd)

	if g.State.Generation != gen || !g.Running() || g.State.Queue.Len() == 0 {
		return Step{}, false
	}
	g.chainActive = true
	g.chainGen = gen
	return Step{Generation: gen}, true
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the SleepFunc backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain executes the queue synchronously, sleeping for delay between
// commands. It returns when the chain ends or ctx is cancelled.
func (g *Game) Drain(ctx context.Context, delay time.Duration, sleep SleepFunc) error {
	if sleep == nil {
		sleep = Sleep
	}
	next, ok := g.Execute()
	for ok {
		if err := sleep(ctx, delay); err != nil {
			g.chainActive = false
			return err
		}
		next, ok = g.Resume(next)
	}
	return nil
}

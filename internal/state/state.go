package state

import (
	"context"
	"log/slog"

	"go-robo/internal/command"
	"go-robo/internal/geom"
	"go-robo/internal/level"
	"go-robo/internal/scoring"

	"github.com/looplab/fsm"
)

// FSM states. Idle and Running are the states a caller can observe between
// events; the others only exist while an event is being processed.
const (
	Idle       = "idle"
	Running    = "running"
	Moving     = "moving"
	Evaluating = "evaluating"
	Crashed    = "crashed"
	Resetting  = "resetting"
)

// Outcome is the result of the most recent terminal transition.
type Outcome int

const (
	NoOutcome Outcome = iota
	Won
	Collided
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Collided:
		return "collided"
	}
	return "none"
}

// Hooks are the effects the state machine asks the outside world to perform.
// Nil hooks are skipped.
type Hooks struct {
	Render  func(s *State)
	Info    func(s *State)
	Success func(s *State)
	Failure func(s *State)
}

type State struct {
	Layout     level.Layout
	Robot      geom.Box
	Queue      *command.Queue
	Score      scoring.Scoring
	FSM        *fsm.FSM
	Generation uint64 // bumped on every start; pending execution steps from older generations are stale
	Outcome    Outcome
	Hooks      Hooks

	pendingLayout *level.Layout
}

func NewState(layout level.Layout, queue *command.Queue, hooks Hooks) *State {
	if queue == nil {
		queue = command.NewQueue()
	}
	s := &State{
		Layout: layout,
		Robot:  layout.SpawnBox(),
		Queue:  queue,
		Score:  *scoring.InitScoring(),
		Hooks:  hooks,
	}

	s.FSM = fsm.NewFSM(
		Idle,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{Idle, Resetting}, Dst: Running},
		{Name: "reset", Src: []string{Idle, Running, Crashed}, Dst: Resetting},

		// Command application
		{Name: "move", Src: []string{Running}, Dst: Moving},
		{Name: "evaluate", Src: []string{Running, Moving}, Dst: Evaluating},

		// Evaluation results, target first
		{Name: "win", Src: []string{Evaluating}, Dst: Idle},
		{Name: "collide", Src: []string{Evaluating}, Dst: Crashed},
		{Name: "settle", Src: []string{Evaluating}, Dst: Running},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			slog.Debug("state transition", "event", e.Event, "src", e.Src, "dst", e.Dst)
		},
		"after_start": func(_ context.Context, e *fsm.Event) {
			s.Robot = s.Layout.SpawnBox()
			s.Generation++
			s.info()
			s.render()
		},
		"enter_resetting": func(ctx context.Context, e *fsm.Event) {
			if s.pendingLayout != nil {
				s.Layout = *s.pendingLayout
				s.pendingLayout = nil
			}
			s.Score.Reset()
			s.Queue.Clear()
			e.FSM.Event(ctx, "start")
		},
		"enter_moving": func(ctx context.Context, e *fsm.Event) {
			if len(e.Args) > 0 {
				if cmd, ok := e.Args[0].(command.Command); ok {
					s.MoveRobot(cmd)
				}
			}
			e.FSM.Event(ctx, "evaluate")
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			s.render()

			if s.HitsTarget() {
				e.FSM.Event(ctx, "win")
				return
			}
			if s.HitObstacle() >= 0 {
				e.FSM.Event(ctx, "collide")
				return
			}
			e.FSM.Event(ctx, "settle")
		},
		"after_win": func(_ context.Context, e *fsm.Event) {
			s.Score.ScoreEvent("win")
			s.Outcome = Won
			s.info()
			if s.Hooks.Success != nil {
				s.Hooks.Success(s)
			}
		},
		"enter_crashed": func(ctx context.Context, e *fsm.Event) {
			s.Outcome = Collided
			if s.Hooks.Failure != nil {
				s.Hooks.Failure(s)
			}
			e.FSM.Event(ctx, "reset")
		},
	}
}

func (s *State) render() {
	if s.Hooks.Render != nil {
		s.Hooks.Render(s)
	}
}

func (s *State) info() {
	if s.Hooks.Info != nil {
		s.Hooks.Info(s)
	}
}

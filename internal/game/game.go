package game

import (
	"context"
	"errors"
	"log/slog"

	"go-robo/internal/command"
	"go-robo/internal/geom"
	"go-robo/internal/level"
	"go-robo/internal/state"

	"github.com/looplab/fsm"
)

// Renderer draws frames. A frame is a Clear followed by one DrawBox per
// entity: robot, target, then obstacles.
type Renderer interface {
	Clear()
	DrawBox(b geom.Box, style level.Style)
}

// Notifier tells the player about the end of a run. Implementations may
// block until the player acknowledges the message.
type Notifier interface {
	NotifySuccess()
	NotifyFailure()
}

// InfoDisplay shows the score, level and task. It is refreshed after every
// score or level change.
type InfoDisplay interface {
	ShowLevel(level int)
	ShowScore(score int)
	ShowTask(task string)
}

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State *state.State

	renderer Renderer
	notifier Notifier
	info     InfoDisplay

	chainActive bool
	chainGen    uint64
}

// NewGame creates a game on the given layout. Any collaborator may be nil.
func NewGame(layout level.Layout, r Renderer, n Notifier, info InfoDisplay) *Game {
	g := &Game{
		renderer: r,
		notifier: n,
		info:     info,
	}
	g.State = state.NewState(layout, command.NewQueue(), state.Hooks{
		Render:  g.renderFrame,
		Info:    g.showInfo,
		Success: g.notifySuccess,
		Failure: g.notifyFailure,
	})
	return g
}

// Init performs the initial reset, which also starts the game.
func (g *Game) Init() {
	g.Reset()
}

// Running reports whether commands are currently applied.
func (g *Game) Running() bool {
	return g.State.IsRunning()
}

// Enqueue appends a command. Commands are accepted in every state and simply
// accumulate while the game is idle.
func (g *Game) Enqueue(cmd command.Command) {
	g.State.Queue.Enqueue(cmd)
}

// Start moves an idle game back to running with the robot at spawn. Score
// and level are kept. Starting a running game does nothing.
func (g *Game) Start() {
	if g.Running() {
		return
	}
	g.State.Outcome = state.NoOutcome
	g.event("start")
}

// Reset clears score, level and queue, puts the robot at spawn and starts
// the game. Pending execution steps become stale.
func (g *Game) Reset() {
	g.State.Outcome = state.NoOutcome
	g.event("reset")
}

// SetLayout swaps the layout in on the next reset.
func (g *Game) SetLayout(l level.Layout) {
	g.State.SetPendingLayout(l)
}

// HandleFrame processes one tick of the frame loop: while running it
// re-renders and re-evaluates win and collision. It reports whether the loop
// should schedule another tick.
func (g *Game) HandleFrame() bool {
	if !g.Running() {
		return false
	}
	g.event("evaluate")
	return g.Running()
}

// Render draws the current frame regardless of state.
func (g *Game) Render() {
	g.renderFrame(g.State)
}

// apply runs one command through the state machine. It is a no-op while the
// game is idle.
func (g *Game) apply(cmd command.Command) {
	if !g.Running() {
		return
	}
	slog.Debug("apply command", "command", cmd.String(), "from", g.State.Robot.Position)
	g.event("move", cmd)
}

func (g *Game) event(name string, args ...interface{}) {
	// We use background context as we don't need cancellation here
	err := g.State.FSM.Event(context.Background(), name, args...)
	if err == nil {
		return
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}
	slog.Debug("event rejected", "event", name, "state", g.State.FSM.Current(), "err", err)
}

func (g *Game) renderFrame(s *state.State) {
	if g.renderer == nil {
		return
	}
	g.renderer.Clear()
	g.renderer.DrawBox(s.Robot, s.Layout.Robot.Style)
	g.renderer.DrawBox(s.Layout.Target.Box, s.Layout.Target.Style)
	for _, o := range s.Layout.Obstacles {
		g.renderer.DrawBox(o.Box, o.Style)
	}
}

func (g *Game) showInfo(s *state.State) {
	if g.info == nil {
		return
	}
	g.info.ShowLevel(s.Score.Level)
	g.info.ShowTask(s.Layout.Task)
	g.info.ShowScore(s.Score.CurrentScore)
}

func (g *Game) notifySuccess(s *state.State) {
	slog.Info("target reached", "score", s.Score.CurrentScore, "level", s.Score.Level)
	if g.notifier != nil {
		g.notifier.NotifySuccess()
	}
}

func (g *Game) notifyFailure(s *state.State) {
	slog.Info("obstacle hit", "obstacle", s.HitObstacle(), "at", s.Robot.Position)
	if g.notifier != nil {
		g.notifier.NotifyFailure()
	}
}

package state

import (
	"context"
	"testing"

	"go-robo/internal/command"
	"go-robo/internal/geom"
	"go-robo/internal/level"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	renders, infos, successes, failures int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		Render:  func(*State) { r.renders++ },
		Info:    func(*State) { r.infos++ },
		Success: func(*State) { r.successes++ },
		Failure: func(*State) { r.failures++ },
	}
}

func newRunningState(t *testing.T, l level.Layout) (*State, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := NewState(l, nil, rec.hooks())
	require.NoError(t, s.FSM.Event(context.Background(), "reset"))
	require.True(t, s.IsRunning())
	return s, rec
}

func move(t *testing.T, s *State, cmd command.Command) {
	t.Helper()
	require.NoError(t, s.FSM.Event(context.Background(), "move", cmd))
}

func TestNewState_StartsIdleAtSpawn(t *testing.T) {
	s := NewState(level.Default(), nil, Hooks{})

	assert.Equal(t, Idle, s.FSM.Current())
	assert.False(t, s.IsRunning())
	assert.Equal(t, geom.NewBox(50, 300, 50, 50), s.Robot)
	assert.Equal(t, 0, s.Score.CurrentScore)
	assert.Equal(t, 1, s.Score.Level)
	assert.NotNil(t, s.Queue)
}

func TestState_ResetInvariants(t *testing.T) {
	s, rec := newRunningState(t, level.Default())
	s.Score.ScoreEvent("win")
	s.Robot = geom.NewBox(400, 0, 50, 50)
	s.Queue.Enqueue(command.Up)
	gen := s.Generation

	require.NoError(t, s.FSM.Event(context.Background(), "reset"))

	assert.Equal(t, Running, s.FSM.Current())
	assert.Equal(t, 0, s.Score.CurrentScore)
	assert.Equal(t, 1, s.Score.Level)
	assert.Equal(t, geom.Position{X: 50, Y: 300}, s.Robot.Position)
	assert.Zero(t, s.Queue.Len())
	assert.Equal(t, gen+1, s.Generation)
	assert.Positive(t, rec.renders)
	assert.Positive(t, rec.infos)
}

func TestState_MoveSettlesWhenNothingIsHit(t *testing.T) {
	s, rec := newRunningState(t, level.Default())
	renders := rec.renders

	move(t, s, command.Down)

	assert.Equal(t, Running, s.FSM.Current())
	assert.Equal(t, geom.Position{X: 50, Y: 350}, s.Robot.Position)
	assert.Equal(t, renders+1, rec.renders, "each command renders one frame")
	assert.Zero(t, rec.successes+rec.failures)
}

func TestState_MoveClampsToCanvas(t *testing.T) {
	s, _ := newRunningState(t, level.Default())
	canvas := s.Layout.Canvas

	sequence := []command.Command{
		command.Down, command.Down, command.Down, command.Down, command.Down, command.Down,
		command.Left, command.Left, command.Left,
	}
	for _, cmd := range sequence {
		move(t, s, cmd)
		require.True(t, s.IsRunning(), "unexpected terminal transition after %s", cmd)
		assert.GreaterOrEqual(t, s.Robot.X, 0)
		assert.GreaterOrEqual(t, s.Robot.Y, 0)
		assert.LessOrEqual(t, s.Robot.X, canvas.Width-s.Robot.Width)
		assert.LessOrEqual(t, s.Robot.Y, canvas.Height-s.Robot.Height)
	}

	assert.Equal(t, geom.Position{X: 0, Y: 550}, s.Robot.Position)
}

func TestState_Win(t *testing.T) {
	s, rec := newRunningState(t, level.Default())
	s.Robot = s.Robot.At(geom.Position{X: 650, Y: 300})

	move(t, s, command.Right)

	assert.Equal(t, Idle, s.FSM.Current())
	assert.False(t, s.IsRunning())
	assert.Equal(t, geom.Position{X: 700, Y: 300}, s.Robot.Position)
	assert.Equal(t, 10, s.Score.CurrentScore)
	assert.Equal(t, 2, s.Score.Level)
	assert.Equal(t, Won, s.Outcome)
	assert.Equal(t, 1, rec.successes)
	assert.Zero(t, rec.failures)
}

func TestState_CollisionResets(t *testing.T) {
	s, rec := newRunningState(t, level.Default())
	s.Score.ScoreEvent("win")
	s.Queue.Enqueue(command.Left)
	s.Robot = s.Robot.At(geom.Position{X: 250, Y: 300})
	gen := s.Generation

	move(t, s, command.Right) // into obstacle (300,250,100,100)

	assert.Equal(t, 1, rec.failures)
	assert.Zero(t, rec.successes)
	assert.Equal(t, Collided, s.Outcome)
	assert.Equal(t, Running, s.FSM.Current())
	assert.Equal(t, 0, s.Score.CurrentScore)
	assert.Equal(t, 1, s.Score.Level)
	assert.Equal(t, geom.Position{X: 50, Y: 300}, s.Robot.Position)
	assert.Zero(t, s.Queue.Len())
	assert.Equal(t, gen+1, s.Generation)
}

func TestState_TargetBeatsObstacle(t *testing.T) {
	l := level.Default()
	l.Obstacles = append(l.Obstacles, level.Entity{Box: geom.NewBox(690, 250, 100, 100)})
	s, rec := newRunningState(t, l)
	s.Robot = s.Robot.At(geom.Position{X: 650, Y: 300})

	move(t, s, command.Right)

	assert.True(t, s.HitsTarget())
	assert.GreaterOrEqual(t, s.HitObstacle(), 0)
	assert.Equal(t, Won, s.Outcome)
	assert.Equal(t, 1, rec.successes)
	assert.Zero(t, rec.failures)
	assert.Equal(t, Idle, s.FSM.Current())
}

func TestState_MoveWhileIdleIsRejected(t *testing.T) {
	s := NewState(level.Default(), nil, Hooks{})
	before := s.Robot

	err := s.FSM.Event(context.Background(), "move", command.Right)

	require.Error(t, err)
	assert.Equal(t, before, s.Robot)
	assert.Equal(t, 0, s.Score.CurrentScore)
	assert.Equal(t, Idle, s.FSM.Current())
}

func TestState_BareStartKeepsScore(t *testing.T) {
	s, _ := newRunningState(t, level.Default())
	s.Robot = s.Robot.At(geom.Position{X: 650, Y: 300})
	move(t, s, command.Right)
	require.Equal(t, Idle, s.FSM.Current())
	s.Queue.Enqueue(command.Up)

	require.NoError(t, s.FSM.Event(context.Background(), "start"))

	assert.True(t, s.IsRunning())
	assert.Equal(t, 10, s.Score.CurrentScore)
	assert.Equal(t, 2, s.Score.Level)
	assert.Equal(t, geom.Position{X: 50, Y: 300}, s.Robot.Position)
	assert.Equal(t, 1, s.Queue.Len(), "a bare start keeps queued commands")
}

func TestState_PendingLayoutAppliesOnReset(t *testing.T) {
	s, _ := newRunningState(t, level.Default())

	next := level.Default()
	next.Name = "next"
	next.Spawn = geom.Position{X: 100, Y: 500}
	s.SetPendingLayout(next)

	assert.True(t, s.HasPendingLayout())
	assert.Equal(t, "factory floor", s.Layout.Name, "layout must not change mid-run")

	require.NoError(t, s.FSM.Event(context.Background(), "reset"))

	assert.False(t, s.HasPendingLayout())
	assert.Equal(t, "next", s.Layout.Name)
	assert.Equal(t, geom.Position{X: 100, Y: 500}, s.Robot.Position)
}

func TestState_EvaluateFromRunning(t *testing.T) {
	s, rec := newRunningState(t, level.Default())
	renders := rec.renders

	require.NoError(t, s.FSM.Event(context.Background(), "evaluate"))

	assert.True(t, s.IsRunning())
	assert.Equal(t, renders+1, rec.renders)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "none", NoOutcome.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "collided", Collided.String())
}

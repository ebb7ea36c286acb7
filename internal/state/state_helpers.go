package state

import (
	"go-robo/internal/command"
	"go-robo/internal/geom"
	"go-robo/internal/level"
)

// IsRunning reports whether the game accepts commands.
func (s *State) IsRunning() bool {
	return s.FSM.Current() == Running
}

// MoveRobot applies the command's displacement and clamps the robot to the
// canvas. Out-of-bounds moves are truncated, never rejected.
func (s *State) MoveRobot(cmd command.Command) {
	dx, dy := cmd.Displacement()
	s.Robot = geom.ClampInto(s.Robot.Translate(dx, dy), s.Layout.Canvas)
}

func (s *State) HitsTarget() bool {
	return geom.Intersects(s.Robot, s.Layout.Target.Box)
}

// HitObstacle returns the index of the first obstacle the robot overlaps, or
// -1.
func (s *State) HitObstacle() int {
	return geom.IntersectsAny(s.Robot, s.Layout.ObstacleBoxes())
}

// SetPendingLayout stores a layout that replaces the active one on the next
// reset. Target and obstacles never change in the middle of a run.
func (s *State) SetPendingLayout(l level.Layout) {
	s.pendingLayout = &l
}

func (s *State) HasPendingLayout() bool {
	return s.pendingLayout != nil
}

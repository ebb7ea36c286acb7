package level

import (
	"errors"
	"fmt"

	"go-robo/internal/geom"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Style is the decorative part of an entity. It never affects game logic.
type Style struct {
	Color string `yaml:"color,omitempty"`
	Label string `yaml:"label,omitempty"`
}

// Entity is a box on the canvas together with how it should be drawn.
type Entity struct {
	geom.Box `yaml:",inline"`
	Style    `yaml:",inline"`
}

// Layout describes one playing field: the canvas, where the robot spawns and
// the fixed target and obstacles. A layout is read-only while a game runs.
type Layout struct {
	Name      string        `yaml:"name"`
	Task      string        `yaml:"task"`
	Canvas    geom.Size     `yaml:"canvas"`
	Spawn     geom.Position `yaml:"spawn"`
	Robot     Entity        `yaml:"robot"`
	Target    Entity        `yaml:"target"`
	Obstacles []Entity      `yaml:"obstacles"`
}

// Default returns the factory-floor layout the game ships with.
func Default() Layout {
	return Layout{
		Name:   "factory floor",
		Task:   "Configure the robot to optimize production.",
		Canvas: geom.Size{Width: 800, Height: 600},
		Spawn:  geom.Position{X: 50, Y: 300},
		Robot: Entity{
			Box:   geom.NewBox(50, 300, 50, 50),
			Style: Style{Color: "cyan", Label: "robot"},
		},
		Target: Entity{
			Box:   geom.NewBox(700, 300, 50, 50),
			Style: Style{Color: "green", Label: "target"},
		},
		Obstacles: []Entity{
			{Box: geom.NewBox(300, 250, 100, 100), Style: Style{Color: "red"}},
			{Box: geom.NewBox(500, 300, 100, 100), Style: Style{Color: "blue"}},
			{Box: geom.NewBox(0, 200, 100, 100), Style: Style{Color: "black"}},
		},
	}
}

// SpawnBox is the robot's box placed at the spawn point.
func (l Layout) SpawnBox() geom.Box {
	return l.Robot.Box.At(l.Spawn)
}

// ObstacleBoxes returns the boxes of all obstacles in declaration order.
func (l Layout) ObstacleBoxes() []geom.Box {
	boxes := make([]geom.Box, len(l.Obstacles))
	for i, o := range l.Obstacles {
		boxes[i] = o.Box
	}
	return boxes
}

// Validate checks the layout invariants: positive sizes, every entity inside
// the canvas and a spawn point that is neither on the target nor on an
// obstacle.
func (l Layout) Validate() error {
	if l.Canvas.Width <= 0 || l.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidLayout, l.Canvas.Width, l.Canvas.Height)
	}
	if err := checkEntity("robot", l.Robot.Box.At(l.Spawn), l.Canvas); err != nil {
		return err
	}
	if err := checkEntity("target", l.Target.Box, l.Canvas); err != nil {
		return err
	}
	for i, o := range l.Obstacles {
		if err := checkEntity(fmt.Sprintf("obstacle %d", i), o.Box, l.Canvas); err != nil {
			return err
		}
	}

	spawn := l.SpawnBox()
	if geom.Intersects(spawn, l.Target.Box) {
		return fmt.Errorf("%w: spawn overlaps the target", ErrInvalidLayout)
	}
	if i := geom.IntersectsAny(spawn, l.ObstacleBoxes()); i >= 0 {
		return fmt.Errorf("%w: spawn overlaps obstacle %d", ErrInvalidLayout, i)
	}
	return nil
}

func checkEntity(name string, b geom.Box, canvas geom.Size) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %s has size %dx%d", ErrInvalidLayout, name, b.Width, b.Height)
	}
	if !geom.Within(b, canvas) {
		return fmt.Errorf("%w: %s at (%d,%d) is outside the canvas", ErrInvalidLayout, name, b.X, b.Y)
	}
	return nil
}

package renderer

import "github.com/beka-birhanu/amazeing/maze"

// DefaultStepTicks is how many ticks each solution cell stays before the next one appears.
const DefaultStepTicks = 4

// Animation reveals a solution one cell at a time.
type Animation struct {
	cells     []maze.Position
	shown     int
	ticks     int
	stepTicks int
	visible   bool
}

// NewAnimation prepares an animation over cells. stepTicks below 1 selects DefaultStepTicks.
func NewAnimation(cells []maze.Position, stepTicks int) *Animation {
	if stepTicks < 1 {
		stepTicks = DefaultStepTicks
	}
	return &Animation{cells: cells, stepTicks: stepTicks}
}

// Toggle hides the path or starts revealing it from the entry.
func (a *Animation) Toggle() {
	a.visible = !a.visible
	a.shown, a.ticks = 0, 0
	if a.visible && len(a.cells) > 0 {
		a.shown = 1
	}
}

// ShowAll makes the whole path visible at once.
func (a *Animation) ShowAll() {
	a.visible = true
	a.shown = len(a.cells)
}

// Reset replaces the path and hides it.
func (a *Animation) Reset(cells []maze.Position) {
	a.cells = cells
	a.visible = false
	a.shown, a.ticks = 0, 0
}

// Tick advances the animation by one frame.
func (a *Animation) Tick() {
	if !a.visible || a.Done() {
		return
	}
	a.ticks++
	if a.ticks >= a.stepTicks {
		a.ticks = 0
		a.shown++
	}
}

// Done reports whether every cell of the path is revealed.
func (a *Animation) Done() bool {
	return a.shown >= len(a.cells)
}

// Visible reports whether the path is being shown.
func (a *Animation) Visible() bool {
	return a.visible
}

// Shown returns the revealed prefix of the path.
func (a *Animation) Shown() []maze.Position {
	if !a.visible {
		return nil
	}
	return a.cells[:a.shown]
}

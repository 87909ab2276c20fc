// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2bluenoise

// State is the relaxation state. Converged and IterationLimitReached are
// terminal and both are normal outcomes.
type State int

const (
	Running State = iota
	Converged
	IterationLimitReached
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case IterationLimitReached:
		return "iteration limit reached"
	}
	return "unknown"
}

// Terminal reports whether no further iterations will run.
func (s State) Terminal() bool {
	return s != Running
}

// controller tracks the iteration state and decides when to stop.
type controller struct {
	tolerance     float64
	maxIterations int

	iteration    int
	step         float64
	displacement float64
	state        State
}

func newController(tolerance float64, maxIterations, numSites int) controller {
	c := controller{tolerance: tolerance, maxIterations: maxIterations}
	switch {
	case numSites < 2:
		// Nothing exerts a force.
		c.state = Converged
	case maxIterations == 0:
		c.state = IterationLimitReached
	}
	return c
}

// advance records one finished iteration and returns the new state.
func (c *controller) advance(step, displacement float64) State {
	if c.state.Terminal() {
		return c.state
	}
	c.iteration++
	c.step = step
	c.displacement = displacement
	switch {
	case displacement < c.tolerance:
		c.state = Converged
	case c.iteration >= c.maxIterations:
		c.state = IterationLimitReached
	}
	return c.state
}

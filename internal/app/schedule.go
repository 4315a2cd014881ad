package app

// Stage is one named step of a schedule. Stages run in insertion order.
type Stage struct {
	Name string
	Fn   func(dt float32)
}

// Schedule is an ordered list of stages run once per invocation.
type Schedule struct {
	stages []Stage
}

func (s *Schedule) Add(name string, fn func(dt float32)) *Schedule {
	s.stages = append(s.stages, Stage{Name: name, Fn: fn})
	return s
}

func (s *Schedule) Run(dt float32) {
	for _, st := range s.stages {
		st.Fn(dt)
	}
}

// Stages returns the stage names in run order.
func (s *Schedule) Stages() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.Name
	}
	return names
}

// maxCatchUpTicks caps how many fixed ticks a single frame may run, so a
// long stall degrades to slow motion instead of a death spiral.
const maxCatchUpTicks = 5

// FixedSchedule runs its stages on a fixed timestep, decoupled from the
// render frame rate by a time accumulator.
type FixedSchedule struct {
	Schedule
	Timestep    float32
	accumulator float32
}

func NewFixedSchedule(timestep float32) *FixedSchedule {
	return &FixedSchedule{Timestep: timestep}
}

// Advance folds a frame's delta time into the accumulator and runs as many
// fixed ticks as fit, returning the number of ticks executed.
func (f *FixedSchedule) Advance(frameDt float32) int {
	f.accumulator += frameDt

	ticks := 0
	for f.accumulator >= f.Timestep && ticks < maxCatchUpTicks {
		f.Run(f.Timestep)
		f.accumulator -= f.Timestep
		ticks++
	}
	if ticks == maxCatchUpTicks && f.accumulator >= f.Timestep {
		// Shed the backlog we are not going to simulate.
		f.accumulator = 0
	}
	return ticks
}

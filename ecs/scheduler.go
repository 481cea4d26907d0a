package ecs

// System updates a world once per fixed tick.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in insertion order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Closer is implemented by systems that hold resources such as file
// watchers.
type Closer interface {
	Close() error
}

// Close releases every system that holds resources and returns the first
// error.
func (s *Scheduler) Close() error {
	if s == nil {
		return nil
	}
	var first error
	for _, system := range s.systems {
		c, ok := system.(Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

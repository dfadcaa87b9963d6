package shutdown

// Combinator awaits multiple triggers, runs clean-up, and joins tasks.
//
// If any of the triggers or tasks complete, the cleanup action is polled
// to completion and then all remaining tasks are drained, last-to-first.
// The produced values of triggers and tasks are observed only to detect
// completion (and optionally logged, see WithLogger); the combinator's own
// resolution carries no payload.
//
// A Combinator is itself a Pollable[struct{}] and is driven the same way
// as its children: single-threaded cooperative polling, at most one Poll
// in flight at a time. It is not safe for concurrent use.
type Combinator[TriggerReturn, TaskReturn any] struct {
	triggers []Pollable[TriggerReturn]
	tasks    []Pollable[TaskReturn]
	cleanup  Pollable[struct{}]
	phase    Phase

	cfg config
}

// New creates a Combinator from its full trigger/task/cleanup sets.
// The sets are captured as given; nothing can be added afterwards. Empty
// sets are legal — with no triggers and no tasks the combinator waits
// forever.
func New[TriggerReturn, TaskReturn any](
	triggers []Pollable[TriggerReturn],
	tasks []Pollable[TaskReturn],
	cleanup Pollable[struct{}],
	opts ...Option,
) *Combinator[TriggerReturn, TaskReturn] {
	c := &Combinator[TriggerReturn, TaskReturn]{
		triggers: triggers,
		tasks:    tasks,
		cleanup:  cleanup,
		phase:    PhaseWaitingForTrigger,
	}
	for _, opt := range opts {
		opt(&c.cfg)
	}
	return c
}

// Phase reports the combinator's current phase.
func (c *Combinator[TriggerReturn, TaskReturn]) Phase() Phase { return c.phase }

// Remaining reports how many tasks have not yet been drained.
func (c *Combinator[TriggerReturn, TaskReturn]) Remaining() int { return len(c.tasks) }

// Poll implements Pollable. One call does a bounded amount of work: at most
// one trigger or task is observed to completion in PhaseWaitingForTrigger,
// the cleanup action is polled once in PhaseRunningAction, and only the
// last remaining task is polled in PhaseJoiningTasks. Whenever progress is
// made before the final result, w.Wake is called so the driving loop comes
// back for the rest.
func (c *Combinator[TriggerReturn, TaskReturn]) Poll(w Waker) (struct{}, bool) {
	switch c.phase {
	case PhaseWaitingForTrigger:
		for i, trigger := range c.triggers {
			if v, ok := trigger.Poll(w); ok {
				if c.cfg.logger != nil {
					c.cfg.logger.Debug("trigger resolved", "index", i, "value", v)
				}
				c.advance(w, PhaseRunningAction)
				return struct{}{}, false
			}
		}
		for i, task := range c.tasks {
			if v, ok := task.Poll(w); ok {
				if c.cfg.logger != nil {
					c.cfg.logger.Debug("task resolved before shutdown", "index", i, "value", v)
				}
				c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
				c.advance(w, PhaseRunningAction)
				return struct{}{}, false
			}
		}
		return struct{}{}, false

	case PhaseRunningAction:
		if _, ok := c.cleanup.Poll(w); ok {
			c.advance(w, PhaseJoiningTasks)
		}
		// Even when cleanup resolved, the result is observed on the next
		// call; the transition and its consequence are decoupled.
		return struct{}{}, false

	default: // PhaseJoiningTasks
		last := len(c.tasks) - 1
		if last < 0 {
			return struct{}{}, true
		}
		if v, ok := c.tasks[last].Poll(w); ok {
			if c.cfg.logger != nil {
				c.cfg.logger.Debug("task drained", "value", v, "remaining", last)
			}
			c.tasks[last] = nil
			c.tasks = c.tasks[:last]
			w.Wake()
		}
		return struct{}{}, false
	}
}

// advance requests re-evaluation and moves to the next phase.
func (c *Combinator[TriggerReturn, TaskReturn]) advance(w Waker, next Phase) {
	w.Wake()
	if c.cfg.logger != nil {
		c.cfg.logger.Debug("phase transition", "from", c.phase, "to", next)
	}
	c.phase = next
}

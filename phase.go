package shutdown

import "fmt"

// Phase is the combinator's current position in its fixed three-state
// lifecycle. Transitions are strictly forward:
// PhaseWaitingForTrigger → PhaseRunningAction → PhaseJoiningTasks.
type Phase int32

const (
	// PhaseWaitingForTrigger: no trigger or task has completed yet.
	PhaseWaitingForTrigger Phase = iota
	// PhaseRunningAction: shutdown has begun; the cleanup action is running.
	PhaseRunningAction
	// PhaseJoiningTasks: cleanup is done; remaining tasks are being drained.
	PhaseJoiningTasks
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseWaitingForTrigger:
		return "WaitingForTrigger"
	case PhaseRunningAction:
		return "RunningAction"
	case PhaseJoiningTasks:
		return "JoiningTasks"
	default:
		return fmt.Sprintf("Phase(%d)", int32(p))
	}
}

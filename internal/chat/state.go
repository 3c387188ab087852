package chat

import (
	"github.com/qmuntal/stateless"
)

// Reply states
const (
	StateIdle          = "Idle"
	StateAwaitingReply = "AwaitingReply"
)

// Reply triggers
const (
	TriggerSubmit      = "Submit"
	TriggerReply       = "Reply"
	TriggerReplyFailed = "ReplyFailed"
)

// newReplyMachine tracks whether the widget waits for the assistant.
// Further submissions while waiting keep it waiting; replies that arrive
// when nothing is pending are ignored.
func newReplyMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(StateIdle)

	sm.Configure(StateIdle).
		Permit(TriggerSubmit, StateAwaitingReply).
		Ignore(TriggerReply).
		Ignore(TriggerReplyFailed)

	sm.Configure(StateAwaitingReply).
		PermitReentry(TriggerSubmit).
		Permit(TriggerReply, StateIdle).
		Permit(TriggerReplyFailed, StateIdle)

	return sm
}

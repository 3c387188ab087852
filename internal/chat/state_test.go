package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyMachine(t *testing.T) {
	tests := []struct {
		name     string
		triggers []string
		want     string
	}{
		{"initial", nil, StateIdle},
		{"submit", []string{TriggerSubmit}, StateAwaitingReply},
		{"submit twice", []string{TriggerSubmit, TriggerSubmit}, StateAwaitingReply},
		{"reply", []string{TriggerSubmit, TriggerReply}, StateIdle},
		{"failure", []string{TriggerSubmit, TriggerReplyFailed}, StateIdle},
		{"stray reply", []string{TriggerReply, TriggerReplyFailed}, StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := newReplyMachine()
			for _, trigger := range tt.triggers {
				require.NoError(t, sm.Fire(trigger))
			}
			assert.Equal(t, tt.want, sm.MustState())
		})
	}
}

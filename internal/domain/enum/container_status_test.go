package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    ContainerStatus
		to      ContainerStatus
		allowed bool
	}{
		{"pending to received", ContainerStatusPending, ContainerStatusReceived, true},
		{"received to done", ContainerStatusReceived, ContainerStatusDone, true},
		{"received reopened to pending", ContainerStatusReceived, ContainerStatusPending, true},
		{"pending straight to done", ContainerStatusPending, ContainerStatusDone, false},
		{"received twice", ContainerStatusReceived, ContainerStatusReceived, false},
		{"done is terminal", ContainerStatusDone, ContainerStatusReceived, false},
		{"done to pending", ContainerStatusDone, ContainerStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestContainerStatusValid(t *testing.T) {
	assert.True(t, ContainerStatusPending.Valid())
	assert.True(t, ContainerStatusReceived.Valid())
	assert.True(t, ContainerStatusDone.Valid())
	assert.False(t, ContainerStatus("Offloaded").Valid())
}

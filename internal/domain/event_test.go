package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		current EventStatus
		next    EventStatus
		master  bool
		want    bool
	}{
		{"open to in progress", EventStatusOpen, EventStatusInProgress, false, true},
		{"open to paused", EventStatusOpen, EventStatusPaused, false, false},
		{"open to completed", EventStatusOpen, EventStatusCompleted, false, false},
		{"open to canceled", EventStatusOpen, EventStatusCanceled, false, false},
		{"in progress to paused", EventStatusInProgress, EventStatusPaused, false, true},
		{"in progress to completed", EventStatusInProgress, EventStatusCompleted, false, true},
		{"in progress to canceled", EventStatusInProgress, EventStatusCanceled, false, true},
		{"in progress to open", EventStatusInProgress, EventStatusOpen, false, false},
		{"paused to in progress", EventStatusPaused, EventStatusInProgress, false, true},
		{"paused to completed", EventStatusPaused, EventStatusCompleted, false, true},
		{"paused to canceled", EventStatusPaused, EventStatusCanceled, false, true},
		{"completed is terminal", EventStatusCompleted, EventStatusInProgress, false, false},
		{"canceled is terminal", EventStatusCanceled, EventStatusInProgress, false, false},
		{"master reopens completed", EventStatusCompleted, EventStatusInProgress, true, true},
		{"master reopens canceled", EventStatusCanceled, EventStatusInProgress, true, true},
		{"master cannot reopen to open", EventStatusCompleted, EventStatusOpen, true, false},
		{"master follows table elsewhere", EventStatusOpen, EventStatusCompleted, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.current, tc.next, tc.master))
		})
	}
}

func TestIsReopen(t *testing.T) {
	assert.True(t, IsReopen(EventStatusCompleted, EventStatusInProgress))
	assert.True(t, IsReopen(EventStatusCanceled, EventStatusInProgress))
	assert.False(t, IsReopen(EventStatusPaused, EventStatusInProgress))
	assert.False(t, IsReopen(EventStatusCanceled, EventStatusCompleted))
}

func TestValidEventStatus(t *testing.T) {
	assert.True(t, ValidEventStatus(EventStatusOpen))
	assert.True(t, ValidEventStatus(EventStatusCanceled))
	assert.False(t, ValidEventStatus(EventStatus("ARCHIVED")))
}

package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		valid    bool
	}{
		{"low is valid", PriorityLow, true},
		{"medium is valid", PriorityMedium, true},
		{"high is valid", PriorityHigh, true},
		{"urgent is valid", PriorityUrgent, true},
		{"empty is invalid", Priority(""), false},
		{"unknown is invalid", Priority("critical"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.priority.IsValid())
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		rank     int
	}{
		{"urgent ranks first", PriorityUrgent, 0},
		{"high ranks second", PriorityHigh, 1},
		{"medium ranks third", PriorityMedium, 2},
		{"low shares the else bucket", PriorityLow, 3},
		{"unknown shares the else bucket", Priority("critical"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.priority.Rank())
		})
	}
}

func TestNewPriority(t *testing.T) {
	priority, err := NewPriority("urgent")
	assert.NoError(t, err)
	assert.Equal(t, PriorityUrgent, priority)

	_, err = NewPriority("blocker")
	assert.Error(t, err)
}

package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		valid  bool
	}{
		{"open is valid", StatusOpen, true},
		{"in_progress is valid", StatusInProgress, true},
		{"closed is valid", StatusClosed, true},
		{"empty is invalid", Status(""), false},
		{"unknown is invalid", Status("pending"), false},
		{"case sensitive", Status("Open"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestStatus_Rank(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		rank   int
	}{
		{"open ranks first", StatusOpen, 0},
		{"in_progress ranks second", StatusInProgress, 1},
		{"closed ranks last", StatusClosed, 2},
		{"unknown shares the closed bucket", Status("archived"), 2},
		{"empty shares the closed bucket", Status(""), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.status.Rank())
		})
	}
}

func TestNewStatus(t *testing.T) {
	status, err := NewStatus("in_progress")
	assert.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = NewStatus("resolved")
	assert.Error(t, err)
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusOpen.IsClosed())
}

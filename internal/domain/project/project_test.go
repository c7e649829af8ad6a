package project_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/alanyang/projecthub/internal/domain/project"
)

func TestCanTransitionTo(t *testing.T) {
	allStates := []State{StatePlanned, StateInProgress, StateCompleted, StateCancelled}

	valid := map[[2]State]bool{
		{StatePlanned, StateInProgress}:   true,
		{StatePlanned, StateCancelled}:    true,
		{StateInProgress, StateCompleted}: true,
		{StateInProgress, StateCancelled}: true,
	}

	// Exhaustive over all 16 (from, to) pairs, including identity pairs.
	for _, from := range allStates {
		for _, to := range allStates {
			want := valid[[2]State{from, to}]
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s→%s", from, to)
		}
	}
}

func TestCanTransitionTo_UnknownState(t *testing.T) {
	assert.False(t, State("garbage").CanTransitionTo(StatePlanned))
	assert.False(t, StatePlanned.CanTransitionTo(State("garbage")))
}

func TestParseState(t *testing.T) {
	s, err := ParseState("IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, s)

	_, err = ParseState("in_progress")
	require.Error(t, err)
	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestNew_Defaults(t *testing.T) {
	p := New("Apollo", "lunar program")

	assert.NotEqual(t, p.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, StatePlanned, p.State)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestTransition_Valid(t *testing.T) {
	p := New("Apollo", "")

	got, err := p.Transition(StateInProgress)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, got.State)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	// Original value untouched.
	assert.Equal(t, StatePlanned, p.State)
}

func TestTransition_Invalid(t *testing.T) {
	p := New("Apollo", "")
	p.State = StateCompleted

	_, err := p.Transition(StateInProgress)
	require.Error(t, err)

	var invalid InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StateCompleted, invalid.From)
	assert.Equal(t, StateInProgress, invalid.To)
}

func TestTransition_IdentityRejected(t *testing.T) {
	p := New("Apollo", "")
	_, err := p.Transition(StatePlanned)
	require.Error(t, err)
}

func TestTouch_RefreshesUpdatedAt(t *testing.T) {
	p := New("Apollo", "")
	p.CreatedAt = p.CreatedAt.Add(-time.Hour)
	p.UpdatedAt = p.CreatedAt

	p.Touch()
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))
}

func TestValidateName(t *testing.T) {
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("ab"))
	assert.NoError(t, ValidateName("abc"))
	assert.NoError(t, ValidateName(strings.Repeat("x", 100)))
	assert.Error(t, ValidateName(strings.Repeat("x", 101)))
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription(""))
	assert.NoError(t, ValidateDescription(strings.Repeat("d", 500)))
	assert.Error(t, ValidateDescription(strings.Repeat("d", 501)))
}

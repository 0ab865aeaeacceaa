package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
)

func TestRangeController_DefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	rc := NewRangeController(now)

	assert.Equal(t, dateutil.Window{From: "20250301", To: "20250331"}, rc.Window())
}

func TestRangeController_SetRangeOrderIndependent(t *testing.T) {
	rc := NewRangeController(time.Now())

	forward, _, err := rc.SetRange("20250103", "20250127")
	require.NoError(t, err)

	backward, _, err := rc.SetRange("20250127", "20250103")
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
	assert.Equal(t, dateutil.Window{From: "20250103", To: "20250127"}, rc.Window())
}

func TestRangeController_ChangedFlag(t *testing.T) {
	rc := NewRangeController(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	_, changed, err := rc.SetRange("20250110", "20250120")
	require.NoError(t, err)
	assert.True(t, changed)

	// Same window again, in either order: no refresh needed.
	_, changed, err = rc.SetRange("20250110", "20250120")
	require.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = rc.SetRange("20250120", "20250110")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRangeController_SetRangeRejectsInvalidDates(t *testing.T) {
	rc := NewRangeController(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	before := rc.Window()

	_, changed, err := rc.SetRange("2025-01-10", "20250120")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.False(t, changed)
	assert.Equal(t, before, rc.Window(), "invalid input leaves the window alone")
}

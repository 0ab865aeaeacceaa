package ledger

import (
	"sync"
	"time"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
)

// RangeController owns the active date window for list queries. On
// initialization it covers the current calendar month. SetRange accepts its
// two bounds in either order and always queries [min, max]; out-of-order
// input is normalized, never rejected.
type RangeController struct {
	mu     sync.Mutex
	window dateutil.Window
}

// NewRangeController creates a controller defaulted to the month of now.
func NewRangeController(now time.Time) *RangeController {
	return &RangeController{window: dateutil.MonthWindow(now)}
}

// Window returns the active window.
func (r *RangeController) Window() dateutil.Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.window
}

// SetRange replaces the active window with [min(a,b), max(a,b)]. It reports
// whether the window actually changed; when it did, the caller schedules
// exactly one list refresh - that report is the only re-fetch trigger
// besides an explicit refresh.
func (r *RangeController) SetRange(a, b dateutil.Date) (dateutil.Window, bool, error) {
	if !a.Valid() || !b.Valid() {
		return dateutil.Window{}, false, apperror.NewValidation("invalid date, expected YYYYMMDD").
			WithDetail("from", string(a)).
			WithDetail("to", string(b))
	}

	window := dateutil.NewWindow(a, b)

	r.mu.Lock()
	defer r.mu.Unlock()
	changed := window != r.window
	r.window = window
	return window, changed, nil
}

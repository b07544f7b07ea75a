package app

import (
	"context"
	"fmt"
	"time"

	"webdash/internal/dialog"
	"webdash/internal/logging"
	"webdash/internal/store"
)

const activityWriteTimeout = 2 * time.Second

// ActivityRecorder stores dialog outcomes and remembers the newest one for
// the status line.
type ActivityRecorder struct {
	store  store.ActivityStore
	logger logging.Logger
	last   *store.Activity
}

func NewActivityRecorder(s store.ActivityStore, logger logging.Logger) *ActivityRecorder {
	if logger == nil {
		logger = logging.Nop()
	}
	r := &ActivityRecorder{store: s, logger: logger.With(logging.F("component", "activity"))}
	if s != nil {
		ctx, cancel := context.WithTimeout(context.Background(), activityWriteTimeout)
		defer cancel()
		if recent, err := s.Recent(ctx, 1); err != nil {
			r.logger.Warn("activity history unavailable", logging.Err(err))
		} else if len(recent) > 0 {
			r.last = &recent[0]
		}
	}
	return r
}

// Record implements the dialog outcome hook.
func (r *ActivityRecorder) Record(out dialog.Outcome) {
	activity := activityFromOutcome(out)
	if r.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), activityWriteTimeout)
		defer cancel()
		stored, err := r.store.Append(ctx, activity)
		if err != nil {
			r.logger.Warn("activity not recorded", logging.F("action", out.Action), logging.Err(err))
		} else {
			activity = stored
		}
	}
	r.last = &activity
}

func (r *ActivityRecorder) Last() (store.Activity, bool) {
	if r == nil || r.last == nil {
		return store.Activity{}, false
	}
	return *r.last, true
}

func activityFromOutcome(out dialog.Outcome) store.Activity {
	activity := store.Activity{
		Action:  out.Action,
		Target:  out.Target,
		OK:      out.Err == nil,
		Message: out.Message,
	}
	if out.Err != nil {
		activity.Error = out.Err.Error()
	}
	return activity
}

func formatActivity(a store.Activity) string {
	status := "ok"
	if !a.OK {
		status = "failed"
	}
	at := ""
	if !a.At.IsZero() {
		at = " " + a.At.Local().Format("15:04:05")
	}
	if a.Target == "" {
		return fmt.Sprintf("%s %s%s", a.Action, status, at)
	}
	return fmt.Sprintf("%s %s %s%s", a.Action, a.Target, status, at)
}

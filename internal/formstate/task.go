package formstate

import "time"

// delayedTask runs fire after a delay unless cancelled first. Exactly one
// of fire and onCancel runs.
type delayedTask struct {
	timer    *time.Timer
	onCancel func()
}

func schedule(d time.Duration, fire, onCancel func()) *delayedTask {
	return &delayedTask{
		timer:    time.AfterFunc(d, fire),
		onCancel: onCancel,
	}
}

// cancel stops the task. If the timer already fired, fire is running or
// has run and onCancel is skipped.
func (t *delayedTask) cancel() bool {
	if !t.timer.Stop() {
		return false
	}
	t.onCancel()
	return true
}

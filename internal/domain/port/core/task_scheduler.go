package core

import "time"

// TaskScheduler arms a callback to fire at or after a wall-clock instant.
// The contract is deliberately minimal: tasks must be idempotent, because a
// fired task may observe state that another caller has already moved past.
// Arming an instant that is already in the past is a no-op; callers that need
// immediate execution run the task synchronously instead.
type TaskScheduler interface {
	// Schedule fires task at or after runAt. Fire-and-forget: there is no
	// handle to cancel an armed task, idempotence at fire time replaces it.
	Schedule(runAt time.Time, task func())
}

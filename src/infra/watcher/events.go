package watcher

import "time"

// RecordingEventType represents the type of recordings-directory event.
type RecordingEventType string

const (
	RecordingAdded RecordingEventType = "added"
)

// RecordingEvent signals that the local recordings directory changed and the
// affected tours should be recomputed.
type RecordingEvent struct {
	Path      string
	EventType RecordingEventType
	Timestamp time.Time
}

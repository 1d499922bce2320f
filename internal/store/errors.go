package store

import "fmt"

// ConflictError reports a lost optimistic-versioning race on a mastery
// state. The losing writer reloads the row and retries; it never
// overwrites blindly.
type ConflictError struct {
	StudentID string
	TopicID   string
	Version   int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("mastery state (%s, %s) changed since version %d was read",
		e.StudentID, e.TopicID, e.Version)
}

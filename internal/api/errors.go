package api

import "fmt"

// RemoteError is a backend call that completed with a non-success
// status, or could not complete at all (Status 0). Message is the
// backend's own message when the envelope carried one, otherwise the
// per-operation fallback, so it is always safe to show verbatim.
type RemoteError struct {
	Status  int
	Message string
	cause   error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *RemoteError) Unwrap() error { return e.cause }

// UserMessage extracts the displayable text from a gateway error.
// Non-gateway errors fall back to their Error string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if re, ok := err.(*RemoteError); ok {
		return re.Message
	}
	return err.Error()
}

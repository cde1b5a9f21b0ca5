package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
)

// RemoteError is a non-success response from the backend, surfaced to the
// caller with the server's status and message unchanged.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %d %s", e.Status, e.Message)
}

// StatusCode extracts the HTTP status carried by err, or 0 when err is not
// a RemoteError.
func StatusCode(err error) int {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}

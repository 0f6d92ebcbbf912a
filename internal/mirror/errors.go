package mirror

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/ledgerscope/explorer/internal/core"
)

// Error is returned for every non-2xx mirror node response.
type Error struct {
	Status  int
	URL     string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.URL, e.Status)
}

// Is lets errors.Is match core.ErrNotFound on 404 responses
// and core.ErrNotAvailable on 429 and 5xx ones.
func (e *Error) Is(target error) bool {
	switch target {
	case core.ErrNotFound:
		return e.Status == http.StatusNotFound
	case core.ErrNotAvailable:
		return e.Status == http.StatusTooManyRequests || e.Status >= http.StatusInternalServerError
	default:
		return false
	}
}

// IsNotFound reports whether err (or any error it wraps) is a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, core.ErrNotFound)
}

// errorResponse is the mirror node error body:
// {"_status": {"messages": [{"message": "Not found"}]}}
type errorResponse struct {
	Status struct {
		Messages []struct {
			Message string `json:"message"`
		} `json:"messages"`
	} `json:"_status"`
}

func (r *errorResponse) message() string {
	if len(r.Status.Messages) == 0 {
		return ""
	}
	return r.Status.Messages[0].Message
}

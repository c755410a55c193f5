package fetcher

import (
	"context"
	"errors"
	"fmt"
)

// Fetcher pulls raw mandi price rows from one upstream source. Rows keep
// their upstream field names; normalization happens downstream.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]map[string]any, error)
	Name() string
}

// ErrTimeout marks a fetch that hit its deadline, as opposed to a refused
// connection or a bad upstream status. Callers branch on it with errors.Is
// so the user knows to wait and retry rather than check the service.
var ErrTimeout = errors.New("upstream fetch timed out")

// StatusError is a non-2xx upstream response, body included when readable.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("upstream returned HTTP %d: %s", e.Status, e.Body)
}

// classify maps transport errors onto the taxonomy. Deadline errors on the
// request context become ErrTimeout; everything else passes through as a
// connectivity failure.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// Mock returns fixed rows for development and tests.
type Mock struct {
	Rows []map[string]any
	Err  error
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Fetch(_ context.Context, _ string) ([]map[string]any, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rows, nil
}

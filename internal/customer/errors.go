package customer

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the CRM backend confirmed no such customer exists.
var ErrNotFound = errors.New("customer not found")

// UpstreamError captures a CRM backend failure: an error status, an
// unparseable payload, or an unreachable host. The detail is for server-side
// logs only and must never be forwarded to the client.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("crm backend returned %d: %s", e.Status, e.Detail)
	}
	return e.Detail
}

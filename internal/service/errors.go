package service

import "fmt"

// TransportError reports a failed HTTP exchange: the request never
// completed, or the service answered with a non-success status.
// Requests are not retried; the error goes straight to the caller.
type TransportError struct {
	Service string
	URL     string
	Status  int
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: request to %s failed: %v", e.Service, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: received non-200 status code %d from %s", e.Service, e.Status, e.URL)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SchemaError reports a response body the adapter cannot work with: it
// did not parse as JSON, or a required field was missing.
type SchemaError struct {
	Service string
	Field   string
	Err     error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: failed to parse JSON response: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s: response is missing required field %q", e.Service, e.Field)
}

func (e *SchemaError) Unwrap() error { return e.Err }

package services

// ServiceError is a typed error with an HTTP status code. Err carries the
// underlying cause when one exists; it is surfaced in the response envelope
// for 5xx failures.
type ServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

package nasa

import "fmt"

// InvalidInputError reports a client-correctable problem with the request
// (bad date format, out-of-range window, missing required parameter). It is
// always raised before any upstream call.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}

func invalidInput(msg string) error {
	return &InvalidInputError{Msg: msg}
}

// ServerConfigError reports a server-side misconfiguration the caller
// cannot correct, such as a missing API key. It surfaces as a 500 with its
// message intact.
type ServerConfigError struct {
	Msg string
}

func (e *ServerConfigError) Error() string {
	return e.Msg
}

// UpstreamTimeoutError reports that an upstream call did not respond within
// its configured budget.
type UpstreamTimeoutError struct {
	Endpoint string
}

func (e *UpstreamTimeoutError) Error() string {
	return fmt.Sprintf("upstream timeout: %s", e.Endpoint)
}

// UpstreamError reports a failure response from the upstream feed provider,
// or a failed dependent secondary fetch. Status is the upstream status code
// where one exists, 500 otherwise.
type UpstreamError struct {
	Status int
	Msg    string
}

func (e *UpstreamError) Error() string {
	return e.Msg
}

package adapter

import "fmt"

// ServerError is a non-2xx response from the chat server on one of the
// operations that surface errors (register, login, send).
type ServerError struct {
	Code int
	Body string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Body)
}

// wrapTransportErr tags a network-level failure with the operation it
// interrupted. The underlying error stays reachable via errors.Is/As.
func wrapTransportErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

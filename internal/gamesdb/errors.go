package gamesdb

import "fmt"

// ConnectError indicates an unreachable or auth-rejected backend. It is
// unrecoverable for the current invocation and must not be retried.
type ConnectError struct {
	Host string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("gamesdb: connecting to %s: %v", e.Host, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// ProcedureError indicates the backend rejected the procedure call (unknown
// name, parameter mismatch) or raised during execution or result fetch.
type ProcedureError struct {
	Procedure string
	Err       error
}

func (e *ProcedureError) Error() string {
	return fmt.Sprintf("gamesdb: calling %s: %v", e.Procedure, e.Err)
}

func (e *ProcedureError) Unwrap() error {
	return e.Err
}

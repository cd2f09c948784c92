package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrUnknownSession = fmt.Errorf("session not found")
	ErrUsernameTaken  = fmt.Errorf("username already registered")
)

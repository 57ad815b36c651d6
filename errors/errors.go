package errors

import "fmt"

var (
	ErrConversationNotFound  = fmt.Errorf("conversation not found")
	ErrBatchDeadlineExceeded = fmt.Errorf("webhook batch deadline exceeded")
	ErrWorkerPanic           = fmt.Errorf("worker panic")
)

package viewmodel

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/hrmsclient"
)

var (
	// ErrCancelled is returned when the operator declines a confirmation.
	ErrCancelled = errors.New("operation cancelled")
	// ErrClosed is returned by operations started after Close.
	ErrClosed = errors.New("view model closed")
	// ErrInFlight is returned when a delete for the same row is still pending.
	ErrInFlight = errors.New("delete already in progress")
)

// RequestError is a backend or network failure. Message is ready to show:
// the server's message when it sent one, otherwise the command's fallback.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newRequestError(err error, fallback string) *RequestError {
	msg := hrmsclient.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}
	return &RequestError{Message: msg, Err: err}
}

// Confirmer asks the operator to approve a destructive command.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AlwaysConfirm approves every prompt.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

func confirm(ctx context.Context, c Confirmer, prompt string) error {
	if c == nil {
		c = AlwaysConfirm
	}
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

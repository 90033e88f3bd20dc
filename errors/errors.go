package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// User-facing routing failures.
	ErrLineBusy       = fmt.Errorf("try to join busy line")
	ErrNotInLine      = fmt.Errorf("sending to the line that you are not in")
	ErrInternal       = fmt.Errorf("internal server error")
	ErrMailboxFull    = fmt.Errorf("mailbox is full")
	ErrInvalidRequest = fmt.Errorf("illegal input")
	ErrInvalidToken   = fmt.Errorf("sender must be 64 bytes")
	ErrContentTooLong = fmt.Errorf("content exceeds the maximum length")

	// Store-level conditions, never sent as is to a client.
	ErrNotPresent       = fmt.Errorf("try to remove a sender that not exist")
	ErrStoreUnavailable = fmt.Errorf("store unavailable")
	ErrMailboxEmpty     = fmt.Errorf("mailbox is empty")

	ErrSinkClosed = fmt.Errorf("sink closed")
)

// Wire codes carried by error frames.
const (
	CodeLineBusy       = "LINE_BUSY"
	CodeNotInLine      = "NOT_IN_LINE"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeMailboxFull    = "MAILBOX_FULL"
	CodeInternal       = "INTERNAL"
)

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Code returns the wire code and the client-safe reason for err.
// Anything not explicitly user-facing collapses to INTERNAL so store internals never leak.
func Code(err error) (string, string) {
	switch {
	case Is(err, ErrLineBusy):
		return CodeLineBusy, ErrLineBusy.Error()
	case Is(err, ErrNotInLine):
		return CodeNotInLine, ErrNotInLine.Error()
	case Is(err, ErrMailboxFull):
		return CodeMailboxFull, ErrMailboxFull.Error()
	case Is(err, ErrInvalidToken):
		return CodeInvalidRequest, ErrInvalidToken.Error()
	case Is(err, ErrContentTooLong):
		return CodeInvalidRequest, ErrContentTooLong.Error()
	case Is(err, ErrInvalidRequest):
		return CodeInvalidRequest, ErrInvalidRequest.Error()
	default:
		return CodeInternal, ErrInternal.Error()
	}
}

// MapToGRPCError converts a relay error into a gRPC status for unary calls.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	code, reason := Code(err)
	switch code {
	case CodeLineBusy:
		return status.Error(codes.ResourceExhausted, reason)
	case CodeNotInLine:
		return status.Error(codes.FailedPrecondition, reason)
	case CodeMailboxFull:
		return status.Error(codes.ResourceExhausted, reason)
	case CodeInvalidRequest:
		return status.Error(codes.InvalidArgument, reason)
	default:
		return status.Error(codes.Internal, reason)
	}
}

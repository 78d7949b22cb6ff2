package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Extraction failure taxonomy. These are captured inside returned results;
// pipeline entrypoints only propagate storage-level errors to callers.
var (
	ErrInputTooShort   = errors.New("input text below minimum readable length")
	ErrUnreadableInput = errors.New("input text fails readable-content heuristic")
	ErrPatternValue    = errors.New("pattern matched an unparseable value")
	ErrModelCall       = errors.New("model call failed")
	ErrModelParse      = errors.New("model response not parseable")
	ErrReviewConflict  = errors.New("extraction superseded; review rejected")
	ErrAlreadyInFlight = errors.New("document extraction already in flight")
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrDatabase        = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsInputError reports whether err belongs to the terminal input-validation
// class (no tier should be attempted).
func IsInputError(err error) bool {
	return errors.Is(err, ErrInputTooShort) || errors.Is(err, ErrUnreadableInput)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

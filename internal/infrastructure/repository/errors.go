package repository

import (
	"context"
	"errors"

	apperrors "guildesk/internal/shared/errors"
)

// wrapDBError translates a low-level database failure into an application
// error. Cancelled or timed-out operations surface as transient so callers
// can retry; unique-key violations surface as conflicts.
func wrapDBError(err error, msg string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperrors.NewTransientError(msg, err.Error())
	case apperrors.IsDuplicateError(err):
		return apperrors.NewConflictError(msg, err.Error())
	default:
		return apperrors.NewInternalError(msg, err.Error())
	}
}

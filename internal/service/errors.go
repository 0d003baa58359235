package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository"
)

var (
	// ErrValidation is the root of every input error: field rules, a code
	// mismatch on update and a missing celebrant reference.
	ErrValidation = errors.New("validation failed")

	ErrCodeMismatch          = errors.New("code in path does not match code in payload")
	ErrCelebrantNotFound     = repository.ErrCelebrantNotFound
	ErrBookingNotFound       = repository.ErrBookingNotFound
	ErrCelebrantRefNotExists = repository.ErrCelebrantRefNotExists
	ErrUpdateConflict        = repository.ErrUpdateConflict
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// existsChecker is the part of a repository needed to classify an update conflict.
type existsChecker interface {
	Exists(ctx context.Context, code uint) (bool, error)
}

// resolveConflict re-checks whether the record behind a failed optimistic
// update still exists. A vanished record becomes notFound; otherwise the
// conflict itself is returned for the caller to treat as fatal.
func resolveConflict(ctx context.Context, repo existsChecker, code uint, conflict, notFound error) error {
	exists, err := repo.Exists(ctx, code)
	if err != nil {
		return fmt.Errorf("repo.Exists -> %w", err)
	}

	if !exists {
		return notFound
	}

	return conflict
}

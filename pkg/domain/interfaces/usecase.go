package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
)

type UseCase interface {
	// Lookup runs the two-stage pipeline: user profile first, then the
	// repository listing when the profile was found.
	Lookup(ctx context.Context, username types.Username) error

	// State returns a snapshot of the current lookup state for rendering.
	State() model.LookupState

	// History returns the most recent lookups, newest first.
	History(ctx context.Context, limit int) ([]*model.LookupRecord, error)
}

package interfaces

//go:generate moq -out ../mock/history_repository_mock.go -pkg mock . HistoryRepository

import (
	"context"

	"github.com/m-mizutani/octolens/pkg/domain/model"
)

// HistoryRepository stores the lookup history.
type HistoryRepository interface {
	Put(ctx context.Context, record *model.LookupRecord) error
	Recent(ctx context.Context, limit int) ([]*model.LookupRecord, error)
}

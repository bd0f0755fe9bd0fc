package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/repository"
)

type historyRepository struct {
	mu      sync.RWMutex
	records []*model.LookupRecord
}

func (r *historyRepository) Put(ctx context.Context, record *model.LookupRecord) error {
	if record == nil {
		return goerr.Wrap(repository.ErrInvalidInput, "record is nil")
	}
	if record.Username == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "username is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, copyRecord(record))

	return nil
}

func (r *historyRepository) Recent(ctx context.Context, limit int) ([]*model.LookupRecord, error) {
	if limit < 0 {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "limit is negative",
			goerr.V("limit", limit),
		)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := limit
	if n > len(r.records) {
		n = len(r.records)
	}

	// newest first
	recent := make([]*model.LookupRecord, 0, n)
	for i := len(r.records) - 1; i >= len(r.records)-n; i-- {
		recent = append(recent, copyRecord(r.records[i]))
	}

	return recent, nil
}

func copyRecord(record *model.LookupRecord) *model.LookupRecord {
	copied := *record
	return &copied
}

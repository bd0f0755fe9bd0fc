package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolens/pkg/domain/interfaces"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/domain/types"
)

// TestAll runs the shared test suite against any HistoryRepository implementation.
func TestAll(t *testing.T, repo interfaces.HistoryRepository) {
	ctx := context.Background()

	t.Run("recent on empty repository returns nothing", func(t *testing.T) {
		records := gt.R1(repo.Recent(ctx, 10)).NoError(t)
		gt.A(t, records).Length(0)
	})

	t.Run("put rejects nil record", func(t *testing.T) {
		gt.Error(t, repo.Put(ctx, nil))
	})

	t.Run("put rejects empty username", func(t *testing.T) {
		gt.Error(t, repo.Put(ctx, &model.LookupRecord{}))
	})

	t.Run("recent rejects negative limit", func(t *testing.T) {
		_, err := repo.Recent(ctx, -1)
		gt.Error(t, err)
	})

	t.Run("recent returns newest first and honors limit", func(t *testing.T) {
		base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		for i, name := range []string{"first", "second", "third"} {
			gt.NoError(t, repo.Put(ctx, &model.LookupRecord{
				Username:   types.Username(name),
				Found:      name != "second",
				LookedUpAt: base.Add(time.Duration(i) * time.Minute),
			}))
		}

		records := gt.R1(repo.Recent(ctx, 2)).NoError(t)
		gt.A(t, records).Length(2)
		gt.V(t, string(records[0].Username)).Equal("third")
		gt.V(t, string(records[1].Username)).Equal("second")
		gt.V(t, records[1].Found).Equal(false)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		records := gt.R1(repo.Recent(ctx, 1)).NoError(t)
		gt.A(t, records).Length(1)
		records[0].Username = "mutated"

		again := gt.R1(repo.Recent(ctx, 1)).NoError(t)
		gt.V(t, string(again[0].Username)).NotEqual("mutated")
	})
}

package usecase

import (
	"sync"

	"github.com/m-mizutani/octolens/pkg/domain/interfaces"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	// mu guards state for memory safety only. Overlapping lookups are not
	// ordered by request identity: whichever completion writes last wins.
	mu    sync.Mutex
	state *model.LookupState
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
		state:   model.NewLookupState(),
	}
}

// State returns a snapshot of the current lookup state.
func (x *UseCase) State() model.LookupState {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.state.Clone()
}

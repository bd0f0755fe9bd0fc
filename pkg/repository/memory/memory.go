package memory

import "github.com/m-mizutani/octolens/pkg/domain/interfaces"

// New creates a new in-memory history repository
func New() interfaces.HistoryRepository {
	return &historyRepository{}
}

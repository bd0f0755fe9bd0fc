package model

import (
	"time"

	"github.com/m-mizutani/octolens/pkg/domain/types"
)

// LookupRecord is one entry of the recent-lookups history.
type LookupRecord struct {
	Username   types.Username `json:"username"`
	Found      bool           `json:"found"`
	LookedUpAt time.Time      `json:"looked_up_at"`
}

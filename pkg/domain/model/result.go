package model

// Result represents the outcome of a profile lookup. Exactly one variant is
// active at a time: Found after a successful lookup, NotFound after the API
// answered with its not-found sentinel, and NoRequestYet before the first
// lookup. Renderers and projections handle all three variants exhaustively
// via type switch.
type Result interface {
	isResult()
}

// Found holds the profile fields shown to the user.
type Found struct {
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
}

// NotFound means the username does not exist upstream.
type NotFound struct{}

// NoRequestYet is the initial state before any lookup.
type NoRequestYet struct{}

func (Found) isResult()        {}
func (NotFound) isResult()     {}
func (NoRequestYet) isResult() {}

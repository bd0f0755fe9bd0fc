package model

// LookupState is the whole application state the view renders from: the
// current lookup result and the current top-starred repository summaries.
// Repos stays empty until a successful lookup completes, and is left
// untouched by a not-found lookup.
type LookupState struct {
	Result Result
	Repos  []RepoSummary
}

// NewLookupState returns the initial state: no request yet, no repositories.
func NewLookupState() *LookupState {
	return &LookupState{
		Result: NoRequestYet{},
	}
}

// Clone returns a copy safe to render while the original keeps mutating.
func (x *LookupState) Clone() LookupState {
	repos := make([]RepoSummary, len(x.Repos))
	copy(repos, x.Repos)
	return LookupState{
		Result: x.Result,
		Repos:  repos,
	}
}

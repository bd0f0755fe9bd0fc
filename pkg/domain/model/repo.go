package model

import "sort"

// RepoSummary is the minimal projection of a repository used for display.
type RepoSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TopStarred returns at most n summaries of the given repositories, ordered
// by star count descending. The sort is stable: repositories with equal star
// counts keep their input order.
func TopStarred(repos []*GitHubRepo, n int) []RepoSummary {
	sorted := make([]*GitHubRepo, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StargazersCount > sorted[j].StargazersCount
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	summaries := make([]RepoSummary, 0, len(sorted))
	for _, repo := range sorted {
		summaries = append(summaries, RepoSummary{
			ID:   repo.ID,
			Name: repo.Name,
			URL:  repo.HTMLURL,
		})
	}

	return summaries
}

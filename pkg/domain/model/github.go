package model

// GitHubUser is the subset of the user-lookup response the application uses.
// ReposURL points at the user's repository listing and is followed as-is.
type GitHubUser struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	ReposURL  string `json:"repos_url"`
}

// GitHubRepo is a single record of the repository-list response. Missing
// fields decode to zero values and are rendered as-is.
type GitHubRepo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	StargazersCount int    `json:"stargazers_count"`
}

package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrUserNotFound  = goerr.New("user not found")
	ErrGitHubAPI     = goerr.New("github API error")
)

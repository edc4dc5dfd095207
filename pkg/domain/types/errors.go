package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
	ErrBlobTooLarge      = goerr.New("blob size exceeds limit")
)

package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrNoSource            = goerr.New("either users-file or users-url is required")
	ErrAmbiguousSource     = goerr.New("users-file and users-url are mutually exclusive")
	ErrInvalidColorTable   = goerr.New("invalid color table")
	ErrDuplicateDepartment = goerr.New("duplicate department name")
)

package main

import "errors"

var (
	ErrNotFound         = errors.New("post not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrPersistence      = errors.New("persistence failure")
	ErrNotInitialized   = errors.New("post store not initialized")
)

package model

import "errors"

var (
	ErrDuplicateUser      = errors.New("user already exists")       // 409
	ErrInvalidCredentials = errors.New("invalid email or password") // 401
	ErrUnauthenticated    = errors.New("not authenticated")         // 401
	ErrNotFound           = errors.New("user not found")            // 404
)

var (
	ErrInvalidInput       = errors.New("invalid input")                                 // 400
	ErrModelOutputInvalid = errors.New("the AI model did not return a valid response")  // 502
	ErrModelUnavailable   = errors.New("the AI model could not be reached")             // 502
	ErrStorageDisabled    = errors.New("file storage is not configured on this server") // 501
)

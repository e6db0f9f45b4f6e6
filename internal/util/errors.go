package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginFailed        = errors.New("Login failed")
	ErrClassNotFound      = errors.New("Class not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrNoSession          = errors.New("no session for token")
	ErrUploadNotAllowed   = errors.New("file type not allowed")
)

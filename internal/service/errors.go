package service

import "errors"

var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrWrongPassword    = errors.New("wrong password")

	ErrSessionCreationFailed     = errors.New("session creation failed")
	ErrSessionIsExpiredOrInvalid = errors.New("session is expired or invalid")

	ErrWrongUploadFilename = errors.New("uploaded file must be named Limerick.txt")
	ErrEmptyUpload         = errors.New("uploaded file could not be read")
	ErrNoUploadedFile      = errors.New("no uploaded file found")
)

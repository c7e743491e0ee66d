package domain

import "errors"

var (
	ErrNoInputDocuments = errors.New("no input documents")
	ErrNoDestination    = errors.New("no storage destination could be resolved")
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrDocumentNotFound = errors.New("source document not found")
	ErrUploadFailed     = errors.New("upload to remote storage failed")
)

package domain

import "errors"

var (
	ErrInvalidDocumentType = errors.New("unsupported document type")
	ErrEmptyExport         = errors.New("no results to export")
)

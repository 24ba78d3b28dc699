// Package common defines sentinel errors shared by the clubcard packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Spreadsheet errors.
	ErrSheetLoad   = errors.New("load spreadsheet")
	ErrStatusWrite = errors.New("write sheet cell")

	// Row processing errors.
	ErrPublish = errors.New("publish card")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

package domain

import "errors"

var (
	// ErrTemplateNotFound indicates the template path does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidPlacement indicates an unrecognized metadata placement value.
	ErrInvalidPlacement = errors.New("invalid metadata placement")

	// ErrValidationFailed indicates the template is missing required sections.
	ErrValidationFailed = errors.New("template validation failed")
)

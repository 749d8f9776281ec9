package prompts

import "errors"

// Sentinel errors for the prompt pipeline. Callers match with errors.Is.
var (
	// ErrUnknownTask is returned when a task name has no registered description.
	ErrUnknownTask = errors.New("unknown correction task")

	// ErrUnknownMode is returned when an interaction mode has no registered template.
	ErrUnknownMode = errors.New("unknown interaction mode")

	// ErrTemplateArity is returned when a template's slot count does not match
	// the number of values supplied. This indicates a configuration defect,
	// not bad caller input.
	ErrTemplateArity = errors.New("template arity mismatch")

	// ErrMarkerNotFound is returned when the model output does not contain the
	// answer marker, typically because generation was truncated before the
	// prompt echo reached the final assistant turn.
	ErrMarkerNotFound = errors.New("answer marker not found in model output")
)

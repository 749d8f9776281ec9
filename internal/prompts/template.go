package prompts

import (
	"fmt"
	"strings"
)

// Slot is the positional placeholder literal used in prompt templates.
// Values are substituted strictly left to right.
const Slot = "{}"

// Template is an ordered-slot string template with a declared arity.
// The arity is derived from the template text at construction time, so a
// template and its slot count can never drift apart.
type Template struct {
	name  string
	text  string
	arity int
}

// NewTemplate creates a template from its raw text. The arity is the number
// of slot literals in the text.
func NewTemplate(name, text string) Template {
	return Template{
		name:  name,
		text:  text,
		arity: strings.Count(text, Slot),
	}
}

// Name returns the template identifier.
func (t Template) Name() string { return t.name }

// Text returns the raw template text with slots intact.
func (t Template) Text() string { return t.text }

// Arity returns the number of slots the template consumes.
func (t Template) Arity() int { return t.arity }

// Render substitutes values into the template positionally.
// The number of values must equal the template arity; otherwise Render
// returns ErrTemplateArity and produces no partial output.
//
// Substitution walks the original text left to right, so slot literals
// inside substituted values are never re-expanded.
func (t Template) Render(values ...string) (string, error) {
	if len(values) != t.arity {
		return "", fmt.Errorf("template %q: %w: %d slots, %d values",
			t.name, ErrTemplateArity, t.arity, len(values))
	}

	var b strings.Builder
	rest := t.text
	for _, v := range values {
		i := strings.Index(rest, Slot)
		b.WriteString(rest[:i])
		b.WriteString(v)
		rest = rest[i+len(Slot):]
	}
	b.WriteString(rest)
	return b.String(), nil
}

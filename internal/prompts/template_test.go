package prompts

import (
	"errors"
	"testing"
)

func TestTemplate_Render(t *testing.T) {
	t.Run("substitutes positionally", func(t *testing.T) {
		tmpl := NewTemplate("greeting", "Hello {}, welcome to {}.")
		if tmpl.Arity() != 2 {
			t.Fatalf("Arity() = %d, want 2", tmpl.Arity())
		}

		got, err := tmpl.Render("Ada", "the course")
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != "Hello Ada, welcome to the course." {
			t.Errorf("Render() = %q", got)
		}
	})

	t.Run("too few values", func(t *testing.T) {
		tmpl := NewTemplate("pair", "{} and {}")
		_, err := tmpl.Render("one")
		if !errors.Is(err, ErrTemplateArity) {
			t.Errorf("Render() error = %v, want ErrTemplateArity", err)
		}
	})

	t.Run("too many values", func(t *testing.T) {
		tmpl := NewTemplate("single", "just {}")
		_, err := tmpl.Render("one", "two")
		if !errors.Is(err, ErrTemplateArity) {
			t.Errorf("Render() error = %v, want ErrTemplateArity", err)
		}
	})

	t.Run("zero arity renders literally", func(t *testing.T) {
		tmpl := NewTemplate("static", "no slots here")
		got, err := tmpl.Render()
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != "no slots here" {
			t.Errorf("Render() = %q", got)
		}
	})

	t.Run("slot literal in value is not re-expanded", func(t *testing.T) {
		tmpl := NewTemplate("nested", "a={} b={}")
		got, err := tmpl.Render("{}", "x")
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != "a={} b=x" {
			t.Errorf("Render() = %q, value containing a slot must pass through verbatim", got)
		}
	})
}

func TestModeTemplates_Arity(t *testing.T) {
	// The mode templates are configuration; their slot counts must match
	// what Build supplies: 2 for zero_shot, 4 for one_shot.
	wantArity := map[Mode]int{
		ModeZeroShot: 2,
		ModeOneShot:  4,
	}
	for mode, want := range wantArity {
		tmpl, err := ModeTemplate(mode)
		if err != nil {
			t.Fatalf("ModeTemplate(%s) error = %v", mode, err)
		}
		if tmpl.Arity() != want {
			t.Errorf("ModeTemplate(%s).Arity() = %d, want %d", mode, tmpl.Arity(), want)
		}
	}
}

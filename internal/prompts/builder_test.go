package prompts

import (
	"errors"
	"strings"
	"testing"
)

const testEssay = "Yesterday I goes to the park and see many bird."

func TestBuild(t *testing.T) {
	t.Run("essay appears exactly once in every configured pair", func(t *testing.T) {
		for _, mode := range Modes() {
			for _, task := range Tasks() {
				prompt, err := Build(mode, task, testEssay, "English")
				if err != nil {
					t.Fatalf("Build(%s, %s) error = %v", mode, task, err)
				}
				if n := strings.Count(prompt, testEssay); n != 1 {
					t.Errorf("Build(%s, %s): essay occurs %d times, want 1", mode, task, n)
				}
			}
		}
	})

	t.Run("one_shot includes example pair once, in order, before essay", func(t *testing.T) {
		prompt, err := Build(ModeOneShot, TaskMinimal, testEssay, "English")
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}

		if n := strings.Count(prompt, ExampleInput); n != 1 {
			t.Errorf("example input occurs %d times, want 1", n)
		}
		if n := strings.Count(prompt, ExampleOutput); n != 1 {
			t.Errorf("example output occurs %d times, want 1", n)
		}

		inIdx := strings.Index(prompt, ExampleInput)
		outIdx := strings.Index(prompt, ExampleOutput)
		essayIdx := strings.Index(prompt, testEssay)
		if !(inIdx < outIdx && outIdx < essayIdx) {
			t.Errorf("ordering wrong: input=%d output=%d essay=%d", inIdx, outIdx, essayIdx)
		}
	})

	t.Run("zero_shot never includes the example pair", func(t *testing.T) {
		prompt, err := Build(ModeZeroShot, TaskFluency, testEssay, "English")
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if strings.Contains(prompt, ExampleInput) || strings.Contains(prompt, ExampleOutput) {
			t.Error("zero_shot prompt contains the one-shot example pair")
		}
	})

	t.Run("language precedes task instruction in system turn", func(t *testing.T) {
		prompt, err := Build(ModeZeroShot, TaskMinimal, testEssay, "Swedish")
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		langIdx := strings.Index(prompt, "Swedish")
		desc, _ := Describe(TaskMinimal)
		descIdx := strings.Index(prompt, desc)
		if langIdx < 0 || descIdx < 0 {
			t.Fatalf("prompt missing language (%d) or task description (%d)", langIdx, descIdx)
		}
		if langIdx > descIdx {
			t.Errorf("language at %d must come before task description at %d", langIdx, descIdx)
		}
	})

	t.Run("pure function", func(t *testing.T) {
		a, err := Build(ModeOneShot, TaskFluency, testEssay, "English")
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		b, err := Build(ModeOneShot, TaskFluency, testEssay, "English")
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if a != b {
			t.Error("identical arguments produced different prompts")
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := Build(ModeZeroShot, Task("rewrite"), testEssay, "English")
		if !errors.Is(err, ErrUnknownTask) {
			t.Errorf("Build() error = %v, want ErrUnknownTask", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Build(Mode("few_shot"), TaskMinimal, testEssay, "English")
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("Build() error = %v, want ErrUnknownMode", err)
		}
	})

	t.Run("prompt ends with the answer marker", func(t *testing.T) {
		for _, mode := range Modes() {
			prompt, err := Build(mode, TaskMinimal, testEssay, "English")
			if err != nil {
				t.Fatalf("Build(%s) error = %v", mode, err)
			}
			if !strings.HasSuffix(prompt, AnswerMarker) {
				t.Errorf("Build(%s): prompt must end with the open assistant turn", mode)
			}
		}
	})
}

func TestDescribe_UnknownTask(t *testing.T) {
	_, err := Describe(Task("paraphrase"))
	if !errors.Is(err, ErrUnknownTask) {
		t.Errorf("Describe() error = %v, want ErrUnknownTask", err)
	}
}

package prompts

import "fmt"

// Build assembles the full prompt for one correction request.
//
// The system instruction is interpolated from (language, task description),
// then substituted into the mode template together with the one-shot example
// pair (when the mode calls for it) and the essay, in that order. Build is a
// pure function: it has no side effects and identical arguments always
// produce identical output.
func Build(mode Mode, task Task, essay, language string) (string, error) {
	instruction, err := Describe(task)
	if err != nil {
		return "", err
	}

	system, err := instructionTemplate.Render(language, instruction)
	if err != nil {
		return "", err
	}

	tmpl, err := ModeTemplate(mode)
	if err != nil {
		return "", err
	}

	values := make([]string, 0, 4)
	values = append(values, system)
	if mode == ModeOneShot {
		values = append(values, ExampleInput, ExampleOutput)
	}
	values = append(values, essay)

	return tmpl.Render(values...)
}

func wrapKeyError(sentinel error, key string) error {
	return fmt.Errorf("%w: %q", sentinel, key)
}

// Package prompts builds grammatical error correction prompts for causal
// language models and extracts corrected essays from their output.
//
// The package holds three fixed registries, all immutable after process
// start and safe for unlimited concurrent readers:
//   - task descriptions (minimal-edit vs fluency-edit correction policy)
//   - interaction-mode templates (zero_shot vs one_shot)
//   - a single worked example pair used by the one-shot mode
//
// Prompts use Llama-3 style chat scaffolding. The model's answer begins
// after the final assistant header, which is also the marker the extractor
// splits on.
package prompts

import "sort"

// Task selects the correction policy embedded in the prompt.
type Task string

const (
	// TaskMinimal corrects errors while changing as little wording as possible.
	TaskMinimal Task = "minimal"
	// TaskFluency additionally allows rephrasing for naturalness.
	TaskFluency Task = "fluency"
)

// Mode selects the conversational arrangement of the prompt.
type Mode string

const (
	// ModeZeroShot sends only the instruction and the essay.
	ModeZeroShot Mode = "zero_shot"
	// ModeOneShot inserts one worked example before the essay.
	ModeOneShot Mode = "one_shot"
)

// Chat-template control tokens. These must match the tokenizer of the
// target model family exactly; the extractor depends on their spelling.
const (
	BeginOfText = "<|begin_of_text|>"
	EndOfTurn   = "<|eot_id|>"

	systemHeader    = "<|start_header_id|>system<|end_header_id|>\n\n"
	userHeader      = "<|start_header_id|>user<|end_header_id|>\n\n"
	assistantHeader = "<|start_header_id|>assistant<|end_header_id|>\n\n"
)

// AnswerMarker is the boundary text inserted immediately before where the
// model's answer begins. The extractor splits on its last occurrence.
const AnswerMarker = assistantHeader

// Fixed worked example for the one-shot mode: a learner sentence with
// typical agreement and preposition errors, and its minimal correction.
const (
	ExampleInput  = "I likes to plays football with my friend in the weekends."
	ExampleOutput = "I like to play football with my friends on the weekends."
)

// instructionTemplate produces the system instruction. Slot order is
// structural: the language names the grammatical subject before the task
// description states the editing policy.
var instructionTemplate = NewTemplate("instruction",
	"You are a teacher correcting essays written by learners of {}. {} "+
		"Reply with the corrected essay only, without any commentary.")

// taskDescriptions maps task names to their authored instruction text.
var taskDescriptions = map[Task]string{
	TaskMinimal: "Correct the essay so that it is free of grammatical and " +
		"spelling errors, keeping the original wording wherever possible and " +
		"making only the minimal edits needed to fix the errors.",
	TaskFluency: "Correct the essay so that it is free of grammatical and " +
		"spelling errors and reads fluently. You may rephrase sentences to " +
		"make them sound natural, but you must not change their meaning.",
}

// modeTemplates maps interaction modes to their ordered-slot templates.
// Zero-shot consumes (instruction, essay); one-shot consumes
// (instruction, example input, example output, essay).
var modeTemplates = map[Mode]Template{
	ModeZeroShot: NewTemplate(string(ModeZeroShot),
		BeginOfText+
			systemHeader+Slot+EndOfTurn+
			userHeader+Slot+EndOfTurn+
			assistantHeader),
	ModeOneShot: NewTemplate(string(ModeOneShot),
		BeginOfText+
			systemHeader+Slot+EndOfTurn+
			userHeader+Slot+EndOfTurn+
			assistantHeader+Slot+EndOfTurn+
			userHeader+Slot+EndOfTurn+
			assistantHeader),
}

// Describe returns the instruction text for a task.
func Describe(task Task) (string, error) {
	desc, ok := taskDescriptions[task]
	if !ok {
		return "", wrapKeyError(ErrUnknownTask, string(task))
	}
	return desc, nil
}

// ModeTemplate returns the prompt template for an interaction mode.
func ModeTemplate(mode Mode) (Template, error) {
	tmpl, ok := modeTemplates[mode]
	if !ok {
		return Template{}, wrapKeyError(ErrUnknownMode, string(mode))
	}
	return tmpl, nil
}

// Tasks returns all registered task names in sorted order.
func Tasks() []Task {
	out := make([]Task, 0, len(taskDescriptions))
	for t := range taskDescriptions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Modes returns all registered interaction modes in sorted order.
func Modes() []Mode {
	out := make([]Mode, 0, len(modeTemplates))
	for m := range modeTemplates {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

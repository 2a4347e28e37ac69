package prompt

import (
	"strings"

	"github.com/anans9/ai-commit/internal/options"
)

// InferTypeInstruction is used when no commit type was requested
const InferTypeInstruction = "Infer the best conventional commit type from the diff."

// Commit builds the prompt sent to the model for commit generation.
// The result depends only on its arguments.
func Commit(diff string, opts options.Options) string {
	return strings.Join([]string{
		"You are a senior engineer writing git commit messages.",
		"Generate exactly one conventional commit message.",
		typeInstruction(opts.Type),
		languageInstruction(opts.Lang),
		"Rules:",
		"1) Output only the final commit message text.",
		"2) First line format: type(scope optional): subject",
		"3) Keep subject <= 72 chars when possible.",
		"4) Add a blank line + concise body only if useful.",
		"5) No markdown fences, no explanations.",
		"",
		"Staged diff:",
		diff,
	}, "\n")
}

func typeInstruction(t options.CommitType) string {
	if t == "" {
		return InferTypeInstruction
	}
	return "Commit type is fixed to '" + string(t) + "'."
}

func languageInstruction(lang options.Lang) string {
	if lang == options.LangZH {
		return "Use Chinese for subject and body."
	}
	return "Use English for subject and body."
}

package doubt

import (
	"regexp"
	"strings"
)

// Reasoning models wrap deliberation in a paired think tag; it is never shown
// to the student.
var thinkRX = regexp.MustCompile(`(?s)<think(?:ing)?>.*?</think(?:ing)?>`)

var (
	fracRX = regexp.MustCompile(`\\frac\{([^{}]*)\}\{([^{}]*)\}`)
	sqrtRX = regexp.MustCompile(`\\sqrt\{([^{}]*)\}`)
)

var tokenReplacer = strings.NewReplacer(
	`\times`, "×",
	`\div`, "÷",
	`\cdot`, "·",
	`\pm`, "±",
	`\le`, "≤",
	`\ge`, "≥",
	`\ne`, "≠",
	"^2", "²",
	"^3", "³",
)

// CleanAnswer prepares a raw model reply for display: drops the thinking
// segment and substitutes the lightweight pseudo-LaTeX tokens the model
// emits for math.
func CleanAnswer(raw string) string {
	s := thinkRX.ReplaceAllString(raw, "")
	s = fracRX.ReplaceAllString(s, "($1)/($2)")
	s = sqrtRX.ReplaceAllString(s, "√($1)")
	s = tokenReplacer.Replace(s)
	return strings.TrimSpace(s)
}

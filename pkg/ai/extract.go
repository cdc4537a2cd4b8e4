package ai

import (
	"regexp"
	"strings"
)

var fenceRX = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls the JSON payload out of a model reply. Models sometimes
// wrap the payload in a fenced code block or surround it with prose; we take
// the first fenced block if present, otherwise the outermost braces.
func ExtractJSON(s string) string {
	if m := fenceRX.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return strings.TrimSpace(s)
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[start : end+1])
}

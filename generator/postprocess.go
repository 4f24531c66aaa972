package generator

import (
	"regexp"
	"strconv"
	"strings"
)

var wordLimitRe = regexp.MustCompile(`around (\d+) words`)

// TrimToWords strips surrounding whitespace and keeps at most limit words.
// A cut text is re-joined with single spaces; otherwise it is returned as is.
// limit <= 0 disables the cut.
func TrimToWords(text string, limit int) (string, bool) {
	text = strings.TrimSpace(text)
	if limit <= 0 {
		return text, false
	}
	words := strings.Fields(text)
	if len(words) <= limit {
		return text, false
	}
	return strings.Join(words[:limit], " "), true
}

func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ParseWordLimit extracts N from the first "around N words" phrase of a prompt.
// Only free-form prompts need this; built prompts carry the count explicitly.
func ParseWordLimit(prompt string) (int, error) {
	m := wordLimitRe.FindStringSubmatch(prompt)
	if len(m) < 2 {
		return 0, &WordLimitParseError{Prompt: prompt}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, &WordLimitParseError{Prompt: prompt}
	}
	return n, nil
}

func postProcess(raw string, limit int) GenerationResult {
	text, truncated := TrimToWords(raw, limit)
	return GenerationResult{
		Text:      text,
		Truncated: truncated,
		WordCount: CountWords(text),
		WordLimit: limit,
	}
}

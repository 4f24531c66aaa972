package generator

import (
	"context"
	"strings"
)

var mockVocabulary = strings.Fields(`Welcome to our site where quality meets care and every detail
is crafted for you. We believe in honest work, friendly service and products that last.
Explore what we offer today and get in touch to take the next step.`)

// MockLLM is an offline stand-in for local runs; it never calls an external model.
// It writes Words words of filler copy, or 400 when Words is zero.
type MockLLM struct {
	Words int
}

func (m MockLLM) Complete(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n := m.Words
	if n <= 0 {
		n = 400
	}
	var sb strings.Builder
	sb.WriteString("# Sample Page\n\n")
	for i := 0; i < n; i++ {
		if i > 0 {
			if i%40 == 0 {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(mockVocabulary[i%len(mockVocabulary)])
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

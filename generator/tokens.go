package generator

import (
	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// CountTokens counts prompt tokens with the model's encoding, falling back to
// cl100k_base for models tiktoken does not know (Gemini, DeepSeek).
func CountTokens(model, prompt string) (int, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return 0, err
		}
	}
	return len(enc.Encode(prompt, nil, nil)), nil
}

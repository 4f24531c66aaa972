package generator

const (
	MinWordCount     = 50
	MaxWordCount     = 2000
	DefaultWordCount = 300
)

// GenerationRequest is what the user submits for one generation.
type GenerationRequest struct {
	PageType    PageType `json:"page_type" jsonschema:"required"`
	Description string   `json:"description" validate:"required" jsonschema:"required,minLength=1,description=Brief description of the website"`
	WordCount   int      `json:"word_count" validate:"min=50,max=2000" jsonschema:"minimum=50,maximum=2000,default=300"`
}

// GenerationResult is the post-processed backend response.
type GenerationResult struct {
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
	WordCount int    `json:"word_count"`
	WordLimit int    `json:"word_limit"`
}

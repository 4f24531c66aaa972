package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// TokenCounter reports how many tokens a prompt occupies for a model.
type TokenCounter func(model, prompt string) (int, error)

// Option configures an Agent.
type Option func(*Agent)

// WithTokenCounter logs the prompt size at debug level before each call.
func WithTokenCounter(tc TokenCounter) Option {
	return func(a *Agent) {
		a.countTokens = tc
	}
}

// Agent turns a GenerationRequest into trimmed web copy.
// It keeps no state between calls.
type Agent struct {
	llm         LLMClient
	model       string
	logger      *logrus.Logger
	countTokens TokenCounter
}

func NewAgent(llm LLMClient, model string, logger *logrus.Logger, opts ...Option) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	a := &Agent{
		llm:    llm,
		model:  model,
		logger: logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

var validate = validator.New()

// ValidateRequest checks a request before anything is built or sent.
func ValidateRequest(req GenerationRequest) error {
	if strings.TrimSpace(req.Description) == "" {
		return &EmptyDescriptionError{}
	}
	if !req.PageType.Valid() {
		return &InvalidPageTypeError{Value: req.PageType.String()}
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "WordCount" {
					return &InvalidWordCountError{WordCount: req.WordCount}
				}
			}
		}
		return err
	}
	return nil
}

// Generate validates req, renders its prompt, calls the backend once and trims
// the answer to req.WordCount words.
func (a *Agent) Generate(ctx context.Context, req GenerationRequest) (GenerationResult, error) {
	if err := ValidateRequest(req); err != nil {
		return GenerationResult{}, err
	}
	prompt, err := BuildPrompt(req.PageType, req.Description, req.WordCount)
	if err != nil {
		return GenerationResult{}, err
	}
	log := a.logger.WithFields(logrus.Fields{
		"page_type":  req.PageType.String(),
		"word_limit": req.WordCount,
		"model":      a.model,
	})
	return a.complete(ctx, log, prompt, req.WordCount)
}

// Complete sends a free-form prompt and trims the answer to wordLimit words.
func (a *Agent) Complete(ctx context.Context, prompt string, wordLimit int) (GenerationResult, error) {
	log := a.logger.WithFields(logrus.Fields{
		"word_limit": wordLimit,
		"model":      a.model,
	})
	return a.complete(ctx, log, prompt, wordLimit)
}

func (a *Agent) complete(ctx context.Context, log *logrus.Entry, prompt string, limit int) (GenerationResult, error) {
	if a.countTokens != nil {
		if n, err := a.countTokens(a.model, prompt); err != nil {
			log.WithError(err).Debug("prompt token count unavailable")
		} else {
			log.WithField("prompt_tokens", n).Debug("prompt built")
		}
	}

	log.Info("requesting copy")
	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("generation failed")
		return GenerationResult{}, newServiceError(a.model, err)
	}
	if strings.TrimSpace(raw) == "" {
		log.Error("model returned empty text")
		return GenerationResult{}, newServiceError(a.model, errors.New("model returned empty text"))
	}

	res := postProcess(raw, limit)
	log.WithFields(logrus.Fields{
		"words":     res.WordCount,
		"truncated": res.Truncated,
	}).Info("copy generated")
	return res, nil
}

package generator

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestAgent(t *testing.T, llm LLMClient, opts ...Option) *Agent {
	t.Helper()
	a, err := NewAgent(llm, "test-model", quietLogger(), opts...)
	require.NoError(t, err)
	return a
}

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil, "m", nil)
	assert.Error(t, err)
}

func TestGenerateSendsBuiltPrompt(t *testing.T) {
	req := GenerationRequest{PageType: Landing, Description: "solar panel installs", WordCount: 120}
	want, err := BuildPrompt(Landing, "solar panel installs", 120)
	require.NoError(t, err)

	llm := &mockLLM{}
	llm.On("Complete", mock.Anything, want).Return("\n  Go solar today.  \n", nil).Once()

	res, err := newTestAgent(t, llm).Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Go solar today.", res.Text)
	assert.False(t, res.Truncated)
	assert.Equal(t, 3, res.WordCount)
	assert.Equal(t, 120, res.WordLimit)
	llm.AssertExpectations(t)
}

func TestGenerateTruncatesToRequestedWords(t *testing.T) {
	llm := &mockLLM{}
	llm.On("Complete", mock.Anything, mock.Anything).Return(strings.Repeat("lorem ipsum ", 250), nil)

	res, err := newTestAgent(t, llm).Generate(context.Background(), GenerationRequest{
		PageType: Home, Description: "a bakery", WordCount: 300,
	})
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Equal(t, 300, res.WordCount)
	assert.Len(t, strings.Fields(res.Text), 300)
	assert.True(t, strings.HasPrefix(res.Text, "lorem ipsum lorem"))
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  GenerationRequest
		want any
	}{
		{"empty description", GenerationRequest{PageType: Home, Description: "", WordCount: 100}, &EmptyDescriptionError{}},
		{"blank description", GenerationRequest{PageType: Home, Description: " \t\n", WordCount: 100}, &EmptyDescriptionError{}},
		{"unknown page type", GenerationRequest{PageType: PageType(99), Description: "x", WordCount: 100}, &InvalidPageTypeError{}},
		{"word count too low", GenerationRequest{PageType: FAQs, Description: "x", WordCount: 49}, &InvalidWordCountError{}},
		{"word count too high", GenerationRequest{PageType: FAQs, Description: "x", WordCount: 2001}, &InvalidWordCountError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockLLM{}
			_, err := newTestAgent(t, llm).Generate(context.Background(), tt.req)
			require.Error(t, err)
			switch tt.want.(type) {
			case *EmptyDescriptionError:
				var e *EmptyDescriptionError
				assert.ErrorAs(t, err, &e)
			case *InvalidPageTypeError:
				var e *InvalidPageTypeError
				assert.ErrorAs(t, err, &e)
			case *InvalidWordCountError:
				var e *InvalidWordCountError
				assert.ErrorAs(t, err, &e)
			}
			llm.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		})
	}
}

func TestValidateBounds(t *testing.T) {
	assert.NoError(t, ValidateRequest(GenerationRequest{PageType: Home, Description: "x", WordCount: MinWordCount}))
	assert.NoError(t, ValidateRequest(GenerationRequest{PageType: Home, Description: "x", WordCount: MaxWordCount}))
}

func TestGenerateEmptyReply(t *testing.T) {
	for _, reply := range []string{"", "   \n ", "\t"} {
		llm := &mockLLM{}
		llm.On("Complete", mock.Anything, mock.Anything).Return(reply, nil)

		res, err := newTestAgent(t, llm).Generate(context.Background(), GenerationRequest{
			PageType: Home, Description: "x", WordCount: 100,
		})
		var se *GenerationServiceError
		require.ErrorAs(t, err, &se, "reply %q", reply)
		assert.Contains(t, err.Error(), "empty text")
		assert.Empty(t, res.Text)
	}
}

func TestGenerateServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	llm := &mockLLM{}
	llm.On("Complete", mock.Anything, mock.Anything).Return("", cause)

	_, err := newTestAgent(t, llm).Generate(context.Background(), GenerationRequest{
		PageType: Services, Description: "plumbing", WordCount: 100,
	})
	var se *GenerationServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "test-model", se.Model)
	assert.Zero(t, se.StatusCode)
	assert.ErrorIs(t, err, cause)
}

func TestCompleteFreeFormPrompt(t *testing.T) {
	llm := &mockLLM{}
	llm.On("Complete", mock.Anything, "my prompt").Return("a b c d e f", nil)

	res, err := newTestAgent(t, llm).Complete(context.Background(), "my prompt", 4)
	require.NoError(t, err)
	assert.Equal(t, "a b c d", res.Text)
	assert.True(t, res.Truncated)
}

func TestTokenCounterIsOptional(t *testing.T) {
	var gotModel string
	counter := func(model, prompt string) (int, error) {
		gotModel = model
		return 0, errors.New("encoding unavailable")
	}
	llm := &mockLLM{}
	llm.On("Complete", mock.Anything, mock.Anything).Return("fine", nil)

	res, err := newTestAgent(t, llm, WithTokenCounter(counter)).Generate(context.Background(), GenerationRequest{
		PageType: AboutUs, Description: "x", WordCount: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "fine", res.Text)
	assert.Equal(t, "test-model", gotModel)
}

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	out, err := ToHTML("# Fresh Sourdough\n\nBaked **daily**.\n\n- crust\n- crumb\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Fresh Sourdough</h1>")
	assert.Contains(t, out, "<strong>daily</strong>")
	assert.Contains(t, out, "<li>crust</li>")
}

func TestToHTMLDropsRawHTML(t *testing.T) {
	out, err := ToHTML("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "About Our Bakery", Title("intro\n## About Our Bakery \n\ntext"))
	assert.Equal(t, "", Title("no heading here"))
}

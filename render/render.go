// Package render turns generated Markdown copy into HTML for display.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML converts Markdown to HTML. Raw HTML in the input is not passed through.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var headingRe = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

// Title returns the first Markdown heading of the copy, or "".
func Title(src string) string {
	m := headingRe.FindStringSubmatch(src)
	if len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

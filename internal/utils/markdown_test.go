package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("**bold** and _italic_"))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>italic</em>")
}

func TestRenderMarkdown_SanitizesScripts(t *testing.T) {
	out := string(RenderMarkdown("hello <script>alert(1)</script> world"))
	assert.False(t, strings.Contains(out, "<script>"))
	assert.Contains(t, out, "hello")
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestReportReason_FromPromptHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/comment/abc/report", nil)
	c.Request.Header.Set("HX-Prompt", "spam")

	assert.Equal(t, "spam", reportReason(c))
}

func TestReportReason_FormFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := url.Values{"reason": {"rude"}}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/comment/abc/report", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	assert.Equal(t, "rude", reportReason(c))
}

// The notice is rendered as HTML in the admin's notification list, so a
// hostile reason must arrive escaped, not executable.
func TestReportNotice_EscapesUserInput(t *testing.T) {
	notice := reportNotice("/r/abc#comment-xyz", "Banitsa", "<script>alert(1)</script>")

	assert.NotContains(t, notice, "<script>")
	assert.Contains(t, notice, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, notice, "<a href=\"/r/abc#comment-xyz\">")

	titled := reportNotice("/r/abc", "<img src=x onerror=alert(1)>", "dup")
	assert.NotContains(t, titled, "<img")
}

func TestHtmxRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HtmxRedirect(c, "/r/abc")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/r/abc", w.Header().Get("HX-Redirect"))
}

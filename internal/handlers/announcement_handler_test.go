package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPreview(t *testing.T) {
	html := "<p>重要通知：<b>美國</b>簽證&nbsp;面談流程&amp;注意事項更新</p>"
	got := cleanPreview(html, 100)
	assert.Equal(t, "重要通知：美國簽證 面談流程注意事項更新", got)
}

func TestCleanPreviewTruncatesRunes(t *testing.T) {
	content := strings.Repeat("公", 40)
	got := cleanPreview("<div>"+content+"</div>", 30)
	assert.Equal(t, 30, len([]rune(got)))
	assert.Equal(t, strings.Repeat("公", 30), got)
}

func TestCleanPreviewShortContent(t *testing.T) {
	assert.Equal(t, "hello", cleanPreview("  <span>hello</span>  ", 30))
	assert.Equal(t, "", cleanPreview("<p></p>", 30))
}

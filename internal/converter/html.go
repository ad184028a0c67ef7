package converter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// RenderMarkdownToHTML converts markdown content to an HTML fragment
func RenderMarkdownToHTML(markdown []byte) []byte {
	return blackfriday.Run(markdown)
}

// ConvertMarkdownToHTML writes markdown as a standalone HTML page titled title at htmlPath
func ConvertMarkdownToHTML(markdown []byte, htmlPath, title string) error {
	if !strings.EqualFold(filepath.Ext(htmlPath), ".html") {
		return fmt.Errorf("output file must have .html extension: %s", htmlPath)
	}

	page := fmt.Sprintf(htmlPage, html.EscapeString(title), RenderMarkdownToHTML(markdown))
	if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", htmlPath, err)
	}
	return nil
}

package render

import (
	"bytes"
	"fmt"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// htmlShell wraps the rendered report body into a standalone page so
// the preview server can show the report with its charts inline
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benford Analysis Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; color: #222; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th { background: #f5f5f5; }
img { max-width: 100%%; }
</style>
</head>
<body>
%s
</body>
</html>
`

// BuildHTMLReport renders the Markdown report into a standalone HTML page
func BuildHTMLReport(markdownReport string) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownReport))

	opts := mdhtml.RendererOptions{Flags: mdhtml.CommonFlags}
	renderer := mdhtml.NewRenderer(opts)
	body := markdown.Render(doc, renderer)

	return []byte(fmt.Sprintf(htmlShell, bytes.TrimSpace(body)))
}

package ingestion

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors end a line of text when flattened
const blockSelectors = "p, div, section, article, header, footer, h1, h2, h3, h4, h5, h6, tr, ul, ol, table, pre, blockquote"

// HTMLToText flattens an HTML document into plain text, one line per block
// element and one "- " bullet per list item. Scripts and styles are dropped.
func HTMLToText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, template, head").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n- ")
		s.AppendHtml("\n")
	})
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n")
		s.AppendHtml("\n")
	})

	return CleanText(doc.Text()), nil
}

package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultWordsPerMinute is the reading speed used when none is configured.
const DefaultWordsPerMinute = 200

// WordCount counts whitespace-separated words in the text of an HTML fragment.
func WordCount(html string) int {
	return len(strings.Fields(PlainText(html)))
}

// PlainText strips markup from an HTML fragment and collapses whitespace.
// Text of adjacent block elements is separated by a space. Unparseable input
// is returned unchanged.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	var b strings.Builder
	collectText(doc.Find("body"), &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(s *goquery.Selection, b *strings.Builder) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(c.Text())
			b.WriteByte(' ')
			return
		}
		collectText(c, b)
	})
}

// ReadingTime returns max(1, ceil(words/wordsPerMinute)).
func ReadingTime(html string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	minutes := (WordCount(html) + wordsPerMinute - 1) / wordsPerMinute
	return max(1, minutes)
}

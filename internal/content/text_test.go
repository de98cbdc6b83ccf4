package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(n int) string {
	return "<p>" + strings.TrimSpace(strings.Repeat("дума ", n)) + "</p>"
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 1},
		{"short", 150, 1},
		{"exact minute", 200, 1},
		{"one over", 201, 2},
		{"three minutes", 450, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(words(tt.words), DefaultWordsPerMinute))
		})
	}
}

func TestReadingTime_FallsBackToDefaultSpeed(t *testing.T) {
	assert.Equal(t, 3, ReadingTime(words(450), 0))
}

func TestWordCount_IgnoresMarkup(t *testing.T) {
	html := `<h2 id="x">Заглавие</h2><p>едно <strong>две</strong></p><ul><li>три</li><li>четири</li></ul>`
	assert.Equal(t, 5, WordCount(html))
	assert.Equal(t, "Заглавие едно две три четири", PlainText(html))
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Пътят към себе си", "patyat-kam-sebe-si"},
		{"Хармония в хаоса", "harmoniya-v-haosa"},
		{"Щастие, 2023!", "shtastie-2023"},
		{"  Мixed Case  ", "mixed-case"},
		{"Жълто цвете", "zhalto-tsvete"},
		{"", ""},
		{"Онлайн групови уъркшопи", "onlayn-grupovi-uarkshopi"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "ЕД", Initials("Елис Димитрова"))
	assert.Equal(t, "АП", Initials("анна мария петрова"))
	assert.Equal(t, "М", Initials("Мария"))
	assert.Equal(t, "?", Initials("   "))
}

func TestShareLinks(t *testing.T) {
	links := ShareLinks("https://example.com/blog/a b", "Заглавие")
	assert.Len(t, links, 3)
	assert.Equal(t, "facebook", links[0].Network)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fexample.com%2Fblog%2Fa+b", links[0].URL)
	assert.Contains(t, links[1].URL, "&text=%D0%97")
	assert.Equal(t, "linkedin", links[2].Network)
}

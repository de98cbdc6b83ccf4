package site

import (
	"html/template"
	"io/fs"
	"strings"

	"github.com/elisdimitrova/psysite/internal/content"
	"github.com/elisdimitrova/psysite/internal/ui"
)

// visibleTags is how many tags a blog card shows before "+N още".
const visibleTags = 2

// Image is a picture with its initials placeholder. Missing is set when the
// picture is known not to exist, in which case only the placeholder is
// rendered.
type Image struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Initials string `json:"initials"`
	Missing  bool   `json:"missing"`
}

// images checks local image paths against the static asset tree.
type images struct {
	assets fs.FS
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "//")
}

// resolve builds the Image for src. Remote images are assumed to load; the
// client script swaps in the placeholder if they do not.
func (im images) resolve(src, alt string) Image {
	img := Image{Src: src, Alt: alt, Initials: content.Initials(alt)}
	switch {
	case src == "":
		img.Missing = true
	case isRemote(src):
	case im.assets == nil:
		img.Missing = true
	default:
		if _, err := fs.Stat(im.assets, strings.TrimPrefix(src, "/")); err != nil {
			img.Missing = true
		}
	}
	return img
}

// CategoryButton is one filter control of a listing.
type CategoryButton struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Card is the summary of a record inside a listing.
type Card struct {
	Kind        content.Kind  `json:"kind"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       Image         `json:"image"`
	Categories  []string      `json:"categories,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	MoreTags    int           `json:"more_tags,omitempty"`
	Date        string        `json:"date,omitempty"`
	ReadingTime int           `json:"reading_time,omitempty"`
	OpenHref    string        `json:"open_href"`
	Links       []ui.LinkView `json:"links,omitempty"`
	Hidden      bool          `json:"-"`
}

// Listing is a filtered registry ready for rendering. Cards holds the
// records matching Selected. Rendered holds every record of the registry,
// with the non-matching ones marked Hidden. Empty marks the designed empty
// state; ResetHref restores All.
type Listing struct {
	Kind         content.Kind     `json:"kind"`
	Selected     string           `json:"selected"`
	Categories   []CategoryButton `json:"categories"`
	Cards        []Card           `json:"cards"`
	Rendered     []Card           `json:"-"`
	Empty        bool             `json:"empty"`
	EmptyText    string           `json:"empty_text"`
	ResetHref    string           `json:"reset_href"`
	ScrollOffset float64          `json:"scroll_offset"`
}

// Fact is a labelled value in a modal's fact sheet.
type Fact struct {
	Label string
	Value string
}

// ModalView is the detail view of a record. It is a pure function of the
// record and the page state it closes back to.
type ModalView struct {
	ID          string
	Kind        content.Kind
	Slug        string
	Title       string
	Image       Image
	Body        template.HTML
	Tags        []string
	Date        string
	Author      string
	ReadingTime int
	Facts       []Fact
	Links       []ui.LinkView
	Share       []content.ShareLink
	CloseHref   string
}

func emptyText(kind content.Kind) string {
	switch kind {
	case content.KindBlog:
		return "Няма намерени статии по тази тема."
	case content.KindBooks:
		return "Няма намерени книги в тази категория."
	case content.KindServices:
		return "Няма намерени услуги в тази категория."
	}
	return ""
}

func splitTags(tags []string) (shown []string, more int) {
	if len(tags) <= visibleTags {
		return tags, 0
	}
	return tags[:visibleTags], len(tags) - visibleTags
}

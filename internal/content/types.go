// Package content holds the static registries of the site: blog posts,
// books and services, plus the helpers that derive views from them.
//
// Registries are built once at startup and never mutated afterwards, so
// they are safe to share between concurrent requests.
package content

import (
	"fmt"
	"time"
)

// All is the synthetic category that disables filtering.
const All = "Всички"

// Kind names a registry. It doubles as the URL segment of the registry.
type Kind string

const (
	KindBlog     Kind = "blog"
	KindBooks    Kind = "books"
	KindServices Kind = "services"
)

// Kinds lists every registry kind in page order.
func Kinds() []Kind {
	return []Kind{KindBooks, KindServices, KindBlog}
}

// ParseKind validates a registry name taken from a URL.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBlog, KindBooks, KindServices:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown registry %q", s)
}

// Record is implemented by every registry entry.
type Record interface {
	// Key is the unique identity of the record within its registry.
	Key() string
	// Slug is the URL-safe form of Key.
	Slug() string
	// CategorySet is the set of categories the record is filed under.
	CategorySet() []string
}

// BlogPost is a single article.
type BlogPost struct {
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Published time.Time `json:"published,omitzero"`
	Author    string    `json:"author"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	ImageURL  string    `json:"image_url"`
}

func (p BlogPost) Key() string           { return p.Title }
func (p BlogPost) Slug() string          { return Slugify(p.Title) }
func (p BlogPost) CategorySet() []string { return p.Tags }

// Summary is the excerpt shown on the post's card.
func (p BlogPost) Summary() string { return p.Excerpt }

// ReadingTime estimates the minutes needed to read the post.
func (p BlogPost) ReadingTime(wordsPerMinute int) int {
	return ReadingTime(p.Content, wordsPerMinute)
}

// Book is a published title shown in the books showcase.
type Book struct {
	Title        string      `json:"title"`
	ImgSrc       string      `json:"img_src"`
	ExternalLink string      `json:"external_link"`
	SourceLink   string      `json:"source_link"`
	Tech         []string    `json:"tech"`
	Categories   []string    `json:"categories"`
	Description  string      `json:"description"`
	ModalContent string      `json:"modal_content"`
	Details      BookDetails `json:"details"`
}

// BookDetails is the fact sheet shown in the book detail view.
type BookDetails struct {
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	Pages     int    `json:"pages"`
	ISBN      string `json:"isbn"`
	Format    string `json:"format"`
}

func (b Book) Key() string           { return b.Title }
func (b Book) Slug() string          { return Slugify(b.Title) }
func (b Book) CategorySet() []string { return b.Categories }
func (b Book) Summary() string       { return b.Description }

// Service is a bookable offering.
type Service struct {
	Title        string       `json:"title"`
	ImgSrc       string       `json:"img_src"`
	BookingLink  string       `json:"booking_link"`
	ScheduleLink string       `json:"schedule_link"`
	Tech         []string     `json:"tech"`
	Categories   []string     `json:"categories"`
	Description  string       `json:"description"`
	ModalContent string       `json:"modal_content"`
	Facts        ServiceFacts `json:"facts"`
}

// ServiceFacts summarises the practical side of a service.
type ServiceFacts struct {
	Duration     string `json:"duration"`
	Location     string `json:"location"`
	Participants string `json:"participants"`
	Rating       string `json:"rating"`
}

func (s Service) Key() string           { return s.Title }
func (s Service) Slug() string          { return Slugify(s.Title) }
func (s Service) CategorySet() []string { return s.Categories }
func (s Service) Summary() string       { return s.Description }

// Warning describes a malformed registry entry. Warnings are reported but
// never stop the site from starting.
type Warning struct {
	Kind    Kind
	Index   int
	Key     string
	Problem string
}

func (w Warning) String() string {
	if w.Key == "" {
		return fmt.Sprintf("%s[%d]: %s", w.Kind, w.Index, w.Problem)
	}
	return fmt.Sprintf("%s[%d] %q: %s", w.Kind, w.Index, w.Key, w.Problem)
}

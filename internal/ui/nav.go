package ui

import "github.com/elisdimitrova/psysite/internal/config"

// Link is a navigation entry. The set of variants is closed: SidebarLink
// for in-page section anchors, MenuLink for outbound or header links.
type Link interface {
	isLink()
}

// SidebarLink jumps to a section of the landing page and is highlighted
// while that section is active.
type SidebarLink struct {
	Section string
	Label   string
	Icon    string
}

// MenuLink points somewhere else, possibly off-site.
type MenuLink struct {
	Label    string
	Href     string
	Icon     string
	External bool
}

func (SidebarLink) isLink() {}
func (MenuLink) isLink()    {}

// LinkView is a link resolved for rendering.
type LinkView struct {
	Href   string
	Label  string
	Icon   string
	Active bool
	Target string
	Rel    string
}

// Resolve turns a link into its view. active is the highlighted section.
func Resolve(l Link, active string) LinkView {
	switch l := l.(type) {
	case SidebarLink:
		return LinkView{
			Href:   "#" + l.Section,
			Label:  l.Label,
			Icon:   l.Icon,
			Active: l.Section == active,
		}
	case MenuLink:
		v := LinkView{Href: l.Href, Label: l.Label, Icon: l.Icon}
		if l.External {
			v.Target = "_blank"
			v.Rel = "noopener noreferrer"
		}
		return v
	}
	return LinkView{}
}

// ResolveAll resolves links in order.
func ResolveAll(links []Link, active string) []LinkView {
	views := make([]LinkView, 0, len(links))
	for _, l := range links {
		views = append(views, Resolve(l, active))
	}
	return views
}

// SidebarLinks are the landing page sections in document order.
func SidebarLinks() []Link {
	return []Link{
		SidebarLink{Section: "about", Label: "За мен", Icon: "person"},
		SidebarLink{Section: "books", Label: "Книги", Icon: "book"},
		SidebarLink{Section: "services", Label: "Услуги", Icon: "work"},
		SidebarLink{Section: "blog", Label: "Блог", Icon: "article"},
		SidebarLink{Section: "contact", Label: "Контакти", Icon: "mail"},
	}
}

// SectionIDs lists the section of every sidebar link in order.
func SectionIDs(links []Link) []string {
	var ids []string
	for _, l := range links {
		if s, ok := l.(SidebarLink); ok {
			ids = append(ids, s.Section)
		}
	}
	return ids
}

// SocialLinks turns the configured profiles into header links.
func SocialLinks(socials []config.SocialLink) []Link {
	links := make([]Link, 0, len(socials))
	for _, s := range socials {
		links = append(links, MenuLink{Label: s.Name, Href: s.URL, Icon: s.Name, External: true})
	}
	return links
}

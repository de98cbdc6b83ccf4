package content

import "net/url"

// ShareLink is an outbound "share this article" link.
type ShareLink struct {
	Network string
	Label   string
	URL     string
}

// ShareLinks builds the Facebook, Twitter and LinkedIn share links for a
// page at pageURL.
func ShareLinks(pageURL, title string) []ShareLink {
	u := url.QueryEscape(pageURL)
	return []ShareLink{
		{Network: "facebook", Label: "Споделете във Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + u},
		{Network: "twitter", Label: "Споделете в Twitter", URL: "https://twitter.com/intent/tweet?url=" + u + "&text=" + url.QueryEscape(title)},
		{Network: "linkedin", Label: "Споделете в LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u},
	}
}

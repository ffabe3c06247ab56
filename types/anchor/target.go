package anchor

import "net/url"

// Target returns the browsing-context target for a link on the given base
// page: Blank for absolute links to another host, Self for same-host and
// relative links. An unparseable href or base stays on the page.
func Target(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return Self
	}

	h, err := url.Parse(href)
	if err != nil {
		return Self
	}

	if h.Host == "" || h.Host == b.Host {
		return Self
	}

	return Blank
}

// Resolve returns the absolute URL for a possibly-relative href against the
// base page. Unparseable input returns the href unchanged.
func Resolve(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}

	h, err := url.Parse(href)
	if err != nil {
		return href
	}

	return b.ResolveReference(h).String()
}

// ScrollOffset returns the scroll destination for an element at elementTop,
// leaving room for a fixed header plus a breathing margin. Never negative.
func ScrollOffset(elementTop, headerHeight, margin int) int {
	return max(0, elementTop-headerHeight-margin)
}

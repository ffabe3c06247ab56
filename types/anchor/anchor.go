// Package anchor resolves link destinations and scroll positions for the
// card UI: whether a link leaves the site, its absolute URL, and where the
// viewport should land when jumping to an element under a fixed header.
package anchor

const (
	// Blank opens the link in a new browsing context.
	Blank = "_blank"
	// Self opens the link in the current browsing context.
	Self = "_self"
)

package domain

import (
	"net/url"
	"path"
	"strings"
)

// Entry is one validated piece of site content.
//
// An Entry is either local (Body holds markdown rendered on-site) or
// external (URL points to the real content, Body is empty). Entries are
// value types: the index hands out copies, never shared pointers.
type Entry struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is derived from the storage location and is unique per load cycle.
	// Example: "2023/hello-world" for content/blog/2023/hello-world.md
	ID string

	// ─────────────────────────────
	// Frontmatter
	// ─────────────────────────────

	Title       string
	Description string
	Date        Date

	// Draft entries stay addressable by ID but are left out of public listings.
	Draft bool

	// External entries link out to URL instead of rendering Body.
	External bool
	URL      string

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Body is the raw markdown. Empty for external entries.
	Body string

	// WordCount counts words of prose text in Body (code blocks excluded).
	WordCount int

	// ReadingTime is in whole minutes; zero for external entries.
	ReadingTime int
}

// Link returns the absolute location of the entry. External entries
// resolve to their own URL, local ones live under /blog/<id>/ on baseURL.
func (e Entry) Link(baseURL string) string {
	if e.External {
		return e.URL
	}
	return BuildURL(baseURL, "blog", e.ID)
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
// A base that does not parse is joined as plain text so the result still
// names the requested path.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimRight(base, "/") + "/" + path.Join(pathSegments...) + "/"
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

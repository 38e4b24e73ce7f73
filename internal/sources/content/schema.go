package content

// Frontmatter is the YAML block at the top of a content file.
//
//	---
//	title: Hello
//	description: First post
//	date: 2023-10-31
//	draft: false
//	external: true
//	url: https://example.org/hello
//	---
type Frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"` // parsed by domain.ParseDate
	Draft       bool   `yaml:"draft"`
	External    bool   `yaml:"external"`
	URL         string `yaml:"url"`
}

// Source is one raw content file discovered on disk.
type Source struct {
	ID   string // slash path relative to the content root, without extension
	Path string // path inside the content filesystem
	Raw  []byte
}

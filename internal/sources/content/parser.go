package content

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/thisisamank/thisisamank.in/internal/domain"
)

// WordsPerMinute drives the reading time estimate.
const WordsPerMinute = 200

// yamlFormat only recognises "---" delimited YAML, decoded with yaml.v3.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Parser turns a raw Source into a validated domain.Entry.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a parser. Bodies are parsed with GitHub flavoured
// markdown so tables and strikethrough count as prose.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Parse decodes the frontmatter, checks every field and the
// external/url vs local/body rule, and returns the entry. Any failure is
// a *domain.ValidationError naming the source and the field.
func (p *Parser) Parse(src Source) (domain.Entry, error) {
	var fm Frontmatter
	body, err := frontmatter.MustParse(bytes.NewReader(src.Raw), &fm, yamlFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return domain.Entry{}, domain.Invalid(src.ID, "frontmatter", "missing --- delimited frontmatter block")
		}
		return domain.Entry{}, domain.Invalid(src.ID, "frontmatter", fmt.Sprintf("malformed yaml: %v", err))
	}

	entry := domain.Entry{
		ID:          src.ID,
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
		Draft:       fm.Draft,
		External:    fm.External,
	}

	if entry.Title == "" {
		return domain.Entry{}, domain.Invalid(src.ID, "title", "required")
	}
	if entry.Description == "" {
		return domain.Entry{}, domain.Invalid(src.ID, "description", "required")
	}
	if strings.TrimSpace(fm.Date) == "" {
		return domain.Entry{}, domain.Invalid(src.ID, "date", "required")
	}
	date, err := domain.ParseDate(fm.Date)
	if err != nil {
		return domain.Entry{}, domain.Invalid(src.ID, "date", err.Error())
	}
	entry.Date = date

	if entry.External {
		link := strings.TrimSpace(fm.URL)
		if link == "" {
			return domain.Entry{}, domain.Invalid(src.ID, "url", "required when external is true")
		}
		if err := checkAbsolute(link); err != nil {
			return domain.Entry{}, domain.Invalid(src.ID, "url", err.Error())
		}
		// The body of an external entry is never rendered.
		entry.URL = link
		return entry, nil
	}

	md := strings.TrimSpace(string(body))
	if md == "" {
		return domain.Entry{}, domain.Invalid(src.ID, "body", "required when external is false")
	}
	entry.Body = md
	entry.WordCount = p.countWords([]byte(md))
	entry.ReadingTime = ReadingTime(entry.WordCount)

	return entry, nil
}

// countWords walks the markdown AST and counts words in text nodes,
// which leaves out code blocks, link targets and raw HTML.
func (p *Parser) countWords(src []byte) int {
	doc := p.md.Parser().Parse(text.NewReader(src))

	words := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindText:
			t := n.(*ast.Text)
			words += len(strings.Fields(string(t.Segment.Value(src))))
		}
		return ast.WalkContinue, nil
	})
	return words
}

// ReadingTime rounds up to whole minutes, with a floor of one minute.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return max(minutes, 1)
}

func checkAbsolute(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %v", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("must be an absolute url, got %q", raw)
	}
	return nil
}

package content

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Loader discovers content files under a filesystem root.
type Loader struct {
	fsys fs.FS
	exts []string
}

// NewLoader creates a loader that keeps files whose extension is in exts.
// Extensions are compared case-insensitively and include the dot (".md").
func NewLoader(fsys fs.FS, exts []string) *Loader {
	return &Loader{
		fsys: fsys,
		exts: exts,
	}
}

// Load walks the tree and reads every content file, sorted by identifier.
// Read failures abort the walk; they are environment problems, not content ones.
func (l *Loader) Load() ([]Source, error) {
	var sources []Source

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories (.git, .obsidian...) never hold entries
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || strings.HasPrefix(d.Name(), "_") {
			return nil
		}
		if !l.accepts(p) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		sources = append(sources, Source{
			ID:   Identifier(p),
			Path: p,
			Raw:  data,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content: %w", err)
	}

	slices.SortFunc(sources, func(a, b Source) int {
		return strings.Compare(a.ID, b.ID)
	})

	return sources, nil
}

func (l *Loader) accepts(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext != "" && slices.Contains(l.exts, ext)
}

// Identifier derives the stable entry identifier from a content path.
// Example: "2023/Hello-World.md" -> "2023/hello-world", "notes/index.md" -> "notes"
func Identifier(p string) string {
	id := strings.TrimSuffix(p, path.Ext(p))
	if path.Base(id) == "index" && path.Dir(id) != "." {
		id = path.Dir(id)
	}
	return strings.ToLower(id)
}

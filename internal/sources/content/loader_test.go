package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoaderLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"hello-world.md":         {Data: []byte("---\ntitle: Hello\n---\nbody")},
		"2023/halloween.mdx":     {Data: []byte("---\ntitle: Boo\n---\nbody")},
		"notes/index.md":         {Data: []byte("---\ntitle: Notes\n---\nbody")},
		"images/cover.png":       {Data: []byte{0x89, 0x50}},
		".obsidian/workspace.md": {Data: []byte("ignored")},
		"_drafts-template.md":    {Data: []byte("ignored")},
		"README":                 {Data: []byte("no extension")},
	}

	loader := NewLoader(fsys, []string{".md", ".mdx"})
	sources, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"2023/halloween", "hello-world", "notes"}
	if len(sources) != len(want) {
		t.Fatalf("Load() returned %d sources, want %d: %+v", len(sources), len(want), sources)
	}
	for i, id := range want {
		if sources[i].ID != id {
			t.Errorf("sources[%d].ID = %q, want %q", i, sources[i].ID, id)
		}
	}
	if string(sources[1].Raw) != "---\ntitle: Hello\n---\nbody" {
		t.Errorf("sources[1].Raw = %q, want file content", sources[1].Raw)
	}
	if sources[0].Path != "2023/halloween.mdx" {
		t.Errorf("sources[0].Path = %q, want 2023/halloween.mdx", sources[0].Path)
	}
}

func TestLoaderLoadFromDisk(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "first-post.md"), []byte("---\ntitle: First\n---\nhi"), 0o644); err != nil {
		t.Fatalf("Failed to create test content file: %v", err)
	}

	sources, err := NewLoader(os.DirFS(tmpDir), []string{".md"}).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(sources) != 1 || sources[0].ID != "first-post" {
		t.Errorf("Load() = %+v, want one source first-post", sources)
	}
}

func TestLoaderLoadDirNotFound(t *testing.T) {
	loader := NewLoader(os.DirFS("/nonexistent/path/content"), []string{".md"})
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent directory should return error")
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"hello-world.md", "hello-world"},
		{"Hello-World.MD", "hello-world"},
		{"2023/halloween.mdx", "2023/halloween"},
		{"notes/index.md", "notes"},
		{"index.md", "index"},
	}
	for _, tt := range tests {
		if got := Identifier(tt.path); got != tt.expected {
			t.Errorf("Identifier(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

package filter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionSetAllows(t *testing.T) {
	set := NewExtensionSet(DefaultExtensions...)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"python file", "main.py", true},
		{"text file", filepath.Join("docs", "notes.txt"), true},
		{"upper case extension", "README.TXT", true},
		{"not allowed", "visible.md", false},
		{"no extension", "Makefile", false},
		{"trailing dot", "weird.", false},
		{"last extension wins", "config.py.env", false},
		{"double extension allowed", "archive.tar.py", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Allows(tt.path))
		})
	}
}

func TestNewExtensionSetNormalizes(t *testing.T) {
	set := NewExtensionSet("GO", ".Md", "  ", ".", ".md")

	assert.Equal(t, []string{".go", ".md"}, set.Extensions())
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Allows("main.go"))
	assert.True(t, set.Allows("README.MD"))
}

func TestEmptyExtensionSetMatchesNothing(t *testing.T) {
	set := NewExtensionSet()

	assert.Zero(t, set.Len())
	assert.False(t, set.Allows("a.py"))
}

func TestIsHidden(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"plain file", filepath.Join("src", "main.py"), false},
		{"hidden file", filepath.Join("src", ".config.py"), true},
		{"hidden ancestor", filepath.Join("project", ".hidden", "secret.py"), true},
		{"hidden directory itself", filepath.Join("project", ".git"), true},
		{"absolute visible path", sep + filepath.Join("home", "user", "a.txt"), false},
		{"dot inside name", filepath.Join("src", "a.b.py"), false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHidden(tt.path))
		})
	}
}

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	t.Parallel()

	root := rustup()

	assert.Same(t, root, Find(root))

	install := Find(root, "toolchain", "i")
	require.NotNil(t, install)
	assert.Equal(t, "rustup toolchain install", install.BinName)

	uninstall := Find(root, "toolchain", "rm")
	require.NotNil(t, uninstall)
	assert.Equal(t, "uninstall", uninstall.Name)

	assert.Nil(t, Find(root, "toolchain", "list"))
	assert.Nil(t, Find(root, "update", "now"))
}

func TestClosest(t *testing.T) {
	t.Parallel()

	name, dist := Closest(rustup(), "instal")
	assert.Equal(t, "install", name)
	assert.Equal(t, 1, dist)

	name, dist = Closest(rustup(), "updte")
	assert.Equal(t, "update", name)
	assert.Equal(t, 1, dist)

	name, _ = Closest(NewRoot("rustup"), "update")
	assert.Empty(t, name)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	root := rustup()

	tests := []struct {
		name  string
		path  []string
		want  string
		found bool
	}{
		{"typo at root", []string{"updte"}, "update", true},
		{"typo below root", []string{"toolchain", "instal"}, "install", true},
		{"alias typo", []string{"toolchain", "j"}, "i", true},
		{"name from another depth", []string{"install"}, "", false},
		{"resolved path", []string{"toolchain", "install"}, "", false},
		{"below a leaf", []string{"update", "now"}, "", false},
		{"too far", []string{"toolchain", "remove"}, "", false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			name, found := Suggest(root, test.path...)
			assert.Equal(t, test.found, found)
			assert.Equal(t, test.want, name)
		})
	}
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src, dst string
		want     int
	}{
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"a", "ab", 1},
		{"été", "ete", 2},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, levenshtein(test.src, test.dst), "%q -> %q", test.src, test.dst)
	}
}

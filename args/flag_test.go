package args

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	argerrors "github.com/reeflective/argtree/internal/errors"
)

func TestFlagDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  *Def
		want string
	}{
		{"long", New("verbose").Long("verbose"), "--verbose"},
		{"short", New("verbose").Short('v'), "-v"},
		{"both", New("verbose").Short('v').Long("verbose"), "--verbose"},
		{"multiple", New("verbose").Short('v').Multiple(true), "-v"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, NewFlag(test.def).String())
		})
	}
}

func TestFlagQueries(t *testing.T) {
	t.Parallel()

	flag := NewFlag(New("verbose").Short('v').VisibleAlias("loud").Default("ignored"))

	assert.Equal(t, KindFlag, flag.Kind())
	assert.False(t, flag.TakesValue())
	assert.False(t, flag.IsSet(TakesValue))
	assert.False(t, flag.LongestFilter())
	assert.Nil(t, flag.ValueNames())
	assert.Nil(t, flag.Validator())
	assert.Equal(t, []string{"loud"}, flag.Aliases())

	_, isSet := flag.DefaultValue()
	assert.False(t, isSet)
}

func TestFlagWriteTo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, WriteUsage(&buf, NewFlag(New("all").Short('a'))))
	assert.Equal(t, "-a", buf.String())

	require.ErrorIs(t, WriteUsage(brokenWriter{}, NewFlag(New("all").Short('a'))), errBrokenPipe)
}

func TestFlagNoSwitch(t *testing.T) {
	t.Parallel()

	flag := NewFlag(New("all"))

	requirePanicsWith(t, argerrors.ErrNoSwitch, func() { _ = flag.String() })
}

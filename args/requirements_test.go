package args

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	argerrors "github.com/reeflective/argtree/internal/errors"
)

func TestCollectRequirements(t *testing.T) {
	t.Parallel()

	required := NewOption(New("output").Long("output").Required(true).Requires("format", "encoding"))
	optional := NewOption(New("input").Long("input").Requires("reader"))

	reqs := []string{"existing"}
	reqs = CollectRequirements(reqs, required)
	reqs = CollectRequirements(reqs, optional)

	assert.Equal(t, []string{"existing", "format", "encoding"}, reqs)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd value")
	even := func(val string) error {
		if len(val)%2 != 0 {
			return errOdd
		}

		return nil
	}

	opt := NewOption(New("mode").Long("mode").PossibleValues("ab", "abc", "cd").Validator(even))

	require.NoError(t, Validate(opt, "ab"))
	require.ErrorIs(t, Validate(opt, "xy"), argerrors.ErrInvalidChoice)

	err := Validate(opt, "abc")
	require.ErrorIs(t, err, argerrors.ErrInvalidValue)
	require.ErrorIs(t, err, errOdd)

	list := NewOption(New("modes").Long("modes").PossibleValues("ab", "cd").ValueDelimiter(','))
	require.NoError(t, Validate(list, "ab,cd"))
	require.ErrorIs(t, Validate(list, "ab,ef"), argerrors.ErrInvalidChoice)

	require.NoError(t, Validate(NewFlag(New("verbose").Short('v')), "anything"))
}

func TestSort(t *testing.T) {
	t.Parallel()

	list := []Arg{
		NewOption(New("zeta").Long("zeta")),
		NewFlag(New("alpha").Long("alpha")),
		NewOption(New("first").Long("first").DisplayOrder(1)),
		NewPositional(New("file").Index(2)),
		NewFlag(New("hidden").Long("hidden").Set(Hidden)),
	}

	Sort(list)

	names := make([]string, len(list))
	for i, arg := range list {
		names[i] = arg.Name()
	}

	assert.Equal(t, []string{"first", "file", "alpha", "hidden", "zeta"}, names)
	assert.Len(t, Visible(list), 4)
}

package babelconfigs

import (
	"testing"
	"time"

	"github.com/reusee/babel/cmds"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/modes"
	"github.com/reusee/dscope"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Len(t, c.Natural(), 36)
	require.Len(t, c.Page(), 36)
	require.Equal(t, 4819, c.PageLength())
	require.Equal(t, 31, c.TitleLength())
	require.Equal(t, coords.Bounds{Walls: 5, Shelves: 7, Volumes: 31, Pages: 421}, c.Bounds())

	i, ok := c.NaturalIndex('б')
	require.True(t, ok)
	require.Equal(t, 1, i)
	i, ok = c.PageIndex('z')
	require.True(t, ok)
	require.Equal(t, 35, i)
	_, ok = c.NaturalIndex('z')
	require.False(t, ok)
}

func TestValidate(t *testing.T) {
	options := DefaultOptions()
	options.PageAlphabet = ""
	_, err := New(options)
	require.ErrorIs(t, err, ErrEmptyAlphabet)

	options = DefaultOptions()
	options.NaturalAlphabet = "абба"
	_, err = New(options)
	require.ErrorIs(t, err, ErrDuplicateRune)

	for _, mutate := range []func(*Options){
		func(o *Options) { o.PageLength = 0 },
		func(o *Options) { o.TitleLength = -1 },
		func(o *Options) { o.Walls = 0 },
		func(o *Options) { o.Shelves = 0 },
		func(o *Options) { o.Volumes = 0 },
		func(o *Options) { o.Pages = 0 },
	} {
		options := DefaultOptions()
		mutate(&options)
		_, err := New(options)
		require.ErrorIs(t, err, ErrNonPositive)
	}
}

func TestSearchOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultSearchOptions().Validate())

	options := DefaultSearchOptions()
	options.MaxAttempts = 0
	require.ErrorIs(t, options.Validate(), ErrNonPositive)

	options = DefaultSearchOptions()
	options.Policy = "guess"
	require.Error(t, options.Validate())
}

func TestPolicyFlag(t *testing.T) {
	executor := cmds.NewExecutor()
	var policy Policy
	executor.Define("-policy", cmds.Func(func(p Policy) {
		policy = p
	}))
	require.NoError(t, executor.Execute([]string{"-policy", "embed"}))
	require.Equal(t, PolicyEmbed, policy)
	require.ErrorIs(t, executor.Execute([]string{"-policy", "guess"}), cmds.ErrBadArgument)
	require.Equal(t, PolicyEmbed, policy)
}

func TestProvidersFromFile(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(NewLoader([]string{"testdata/babel.cue"})),
	).Call(func(
		config Configuration,
		search SearchOptions,
	) {
		require.Equal(t, []rune("abcdefghijklmnopqrstuvwxyz ,."), config.Natural())
		require.Equal(t, 1000, config.PageLength())
		require.Equal(t, 3, config.Bounds().Walls)
		// not in the file
		require.Equal(t, 421, config.Bounds().Pages)
		require.Equal(t, DefaultOptions().PageAlphabet, string(config.Page()))

		require.Equal(t, 77, search.MaxAttempts)
		require.Equal(t, 250*time.Millisecond, search.Timeout)
		require.Equal(t, PolicyEmbed, search.Policy)
		// pinned by test mode
		require.Equal(t, uint64(42), search.Seed)
	})
}

func TestProvidersDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(NewLoader(nil)),
	).Call(func(
		config Configuration,
		search SearchOptions,
	) {
		require.Equal(t, DefaultOptions(), config.Options())
		require.Equal(t, PolicyScan, search.Policy)
		require.Equal(t, DefaultMaxAttempts, search.MaxAttempts)
	})
}

func TestInvalidFile(t *testing.T) {
	require.Panics(t, func() {
		dscope.New(
			new(Module),
			modes.ForTest(t),
		).Fork(
			dscope.Provide(NewLoader([]string{"testdata/invalid.cue"})),
		).Call(func(
			config Configuration,
		) {
		})
	})
}

func TestReservedRune(t *testing.T) {
	options := DefaultOptions()
	options.PageAlphabet = "01\n"
	_, err := New(options)
	require.ErrorIs(t, err, ErrReservedRune)
}

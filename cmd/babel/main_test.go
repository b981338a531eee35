package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/cmds"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/debugs"
	"github.com/reusee/babel/modes"
	"github.com/reusee/babel/pages"
	"github.com/reusee/babel/searches"
	"github.com/reusee/dscope"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T, stdin string) (env env, out *bytes.Buffer) {
	out = new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(babelconfigs.NewLoader(nil)),
	).Call(func(
		engine *searches.Engine,
		globals debugs.Globals,
		tap debugs.Tap,
		runScript debugs.RunScript,
	) {
		env.engine = engine
		env.globals = globals
		env.tap = tap
		env.runScript = runScript
		env.stdin = func() string {
			return stdin
		}
		env.output = out
	})
	return
}

func TestPageAction(t *testing.T) {
	env, out := testEnv(t, "")
	err := runQuery(queries[0].query, "1-1-1-1")(context.Background(), env)
	require.NoError(t, err)
	page := pages.Generate(coords.Coordinates{Wall: 1, Shelf: 1, Volume: 1, Page: 1}, env.engine.Config())
	require.True(t, strings.HasPrefix(out.String(), "address: "+page.Address()+"\ntitle: "+page.Title+"\n\n"))
	require.True(t, strings.HasSuffix(out.String(), page.Content+"\n"))
}

func TestSearchFromStdin(t *testing.T) {
	env, out := testEnv(t, "2-3-4-5")
	err := runQuery(search, "-")(context.Background(), env)
	require.NoError(t, err)
	require.Contains(t, out.String(), "-2-3-4-5\n")
}

func TestQueryErrors(t *testing.T) {
	env, _ := testEnv(t, "")
	ctx := context.Background()

	err := runQuery(queries[0].query, "0-0-0-999999")(ctx, env)
	require.ErrorIs(t, err, coords.ErrOutOfBounds)
	require.True(t, strings.HasPrefix(userMessage(err), "address outside the library"))

	err = runQuery(queries[0].query, "1-x-1-1")(ctx, env)
	require.ErrorIs(t, err, coords.ErrInvalidFormat)
	require.True(t, strings.HasPrefix(userMessage(err), "not an address"))

	err = runQuery(queries[3].query, "a(")(ctx, env)
	require.ErrorIs(t, err, searches.ErrInvalidPattern)
	require.True(t, strings.HasPrefix(userMessage(err), "bad regular expression"))

	// no page contains runes outside the page alphabet
	err = runQuery(queries[4].query, "ЖЖ")(ctx, env)
	require.ErrorIs(t, err, searches.ErrNotFound)
	require.True(t, strings.HasPrefix(userMessage(err), "no page found"))
}

func TestVerify(t *testing.T) {
	env, out := testEnv(t, "")
	c := coords.Coordinates{Wall: 1, Shelf: 2, Volume: 3, Page: 4}
	require.NoError(t, verify(coords.Address(c))(context.Background(), env))
	require.Equal(t, coords.Address(c)+"\n", out.String())

	err := verify("0000-1-2-3-4")(context.Background(), env)
	require.ErrorIs(t, err, errTokenMismatch)
}

func TestEmbedThenDecipher(t *testing.T) {
	env, out := testEnv(t, "")
	ctx := context.Background()
	res, err := env.engine.EmbedExact(ctx, "всё уже написано")
	require.NoError(t, err)

	env.stdin = func() string {
		return res.Page.Content
	}
	require.NoError(t, decipher(res.Page.Address())(ctx, env))
	require.Equal(t, "всё уже написано", strings.TrimSpace(out.String()))
}

func TestScriptAction(t *testing.T) {
	env, out := testEnv(t, "")
	path := filepath.Join(t.TempDir(), "title.star")
	require.NoError(t, os.WriteFile(path, []byte(`print(title("1-1-1")["page"]["title"])`), 0644))
	require.NoError(t, script(path)(context.Background(), env))
	title := pages.Title(coords.Coordinates{Wall: 1, Shelf: 1, Volume: 1}, env.engine.Config())
	require.Equal(t, title+"\n", out.String())

	err := script(filepath.Join(t.TempDir(), "missing.star"))(context.Background(), env)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.star")
}

func TestUserMessage(t *testing.T) {
	err := fmt.Errorf("%w after %d attempts", searches.ErrNotFound, 3)
	require.Equal(t, "no page found, raise -attempts or -timeout: not found after 3 attempts", userMessage(err))
	require.Equal(t, "foo", userMessage(fmt.Errorf("foo")))
}

func TestEmbedSubCommands(t *testing.T) {
	env, out := testEnv(t, "")
	t.Cleanup(func() {
		actions = nil
	})

	actions = nil
	require.ErrorIs(t, cmds.GlobalExecutor.Execute([]string{"exact", "текст"}), cmds.ErrUnknownCommand)
	require.NoError(t, cmds.GlobalExecutor.Execute([]string{
		"embed", "exact", "всё уже написано",
		"into-title", "заглавие",
	}))
	require.Len(t, actions, 2)

	require.NoError(t, actions[0](context.Background(), env))
	require.Contains(t, out.String(), "offset: ")
	require.Contains(t, out.String(), "seed: 42\n")

	out.Reset()
	require.NoError(t, actions[1](context.Background(), env))
	require.True(t, strings.HasPrefix(out.String(), "address: "))
	require.NotContains(t, out.String(), "offset: ")
}

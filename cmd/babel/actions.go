package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/babel/ciphers"
	"github.com/reusee/babel/cmds"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/debugs"
	"github.com/reusee/babel/searches"
)

// env carries what actions need from the scope.
type env struct {
	engine    *searches.Engine
	globals   debugs.Globals
	tap       debugs.Tap
	runScript debugs.RunScript
	stdin     func() string
	output    io.Writer
}

type action func(ctx context.Context, env env) error

// actions run in command line order after the scope is built
var actions []action

type query func(*searches.Engine) func(context.Context, string) (searches.Result, error)

var queries = []struct {
	name  string
	desc  string
	query query
}{
	{"page", "print the page at w-s-v-p or token-w-s-v-p", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.Lookup
	}},
	{"title", "print the title slot of the volume at w-s-v", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.Title
	}},
	{"search", "classify the input and dispatch it, \"-\" reads stdin", search},
	{"regex", "sample pages until one matches the pattern", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.Regex
	}},
	{"scan", "sample pages until one contains the text", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.Scan
	}},
	{"address", "print the page at a token-w-s-v-p address after checking its token", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.ByAddress
	}},
}

// embeds are grouped under the embed command: "embed exact <text>"
var embeds = []struct {
	name  string
	desc  string
	query query
}{
	{"random", "plant the text at a random depth of a random page", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.Embed
	}},
	{"exact", "plant the text in a random page padded with spaces", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.EmbedExact
	}},
	{"into-title", "encipher the text as the title of a random volume", func(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
		return e.EmbedTitle
	}},
}

func search(e *searches.Engine) func(context.Context, string) (searches.Result, error) {
	return e.Search
}

func queryCommand(q query, desc string) *cmds.Command {
	return cmds.Func(func(input string) {
		actions = append(actions, runQuery(q, input))
	}).Desc(desc)
}

func init() {
	for _, q := range queries {
		cmds.Define(q.name, queryCommand(q.query, q.desc))
	}

	subs := make(map[string]*cmds.Command, len(embeds))
	for _, e := range embeds {
		subs[e.name] = queryCommand(e.query, e.desc)
	}
	cmds.Define("embed", cmds.Sub(subs).Desc("plant text into the library"))

	cmds.Define("verify", cmds.Func(func(address string) {
		actions = append(actions, verify(address))
	}).Desc("check the token of an extended address"))

	cmds.Define("decipher", cmds.Func(func(address string) {
		actions = append(actions, decipher(address))
	}).Desc("decipher page text read from stdin with the stream of the address"))

	cmds.Define("repl", cmds.Func(func() {
		actions = append(actions, repl)
	}).Desc("open a starlark REPL over the engine"))

	cmds.Define("script", cmds.Func(func(path string) {
		actions = append(actions, script(path))
	}).Desc("run a starlark file over the engine"))
}

func runQuery(q query, input string) action {
	return func(ctx context.Context, env env) error {
		if input == "-" {
			input = env.stdin()
		}
		res, err := q(env.engine)(ctx, input)
		if err != nil {
			return err
		}
		printResult(env.output, res)
		return nil
	}
}

func verify(address string) action {
	return func(ctx context.Context, env env) error {
		if !coords.VerifyAddress(address) {
			return errTokenMismatch
		}
		c, err := coords.Parse(address, env.engine.Config().Bounds())
		if err != nil {
			return err
		}
		fmt.Fprintln(env.output, coords.Address(c))
		return nil
	}
}

func decipher(address string) action {
	return func(ctx context.Context, env env) error {
		config := env.engine.Config()
		c, err := coords.Parse(address, config.Bounds())
		if err != nil {
			return err
		}
		plain, err := ciphers.Decipher(env.stdin(), c, config)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.output, plain)
		return nil
	}
}

func repl(ctx context.Context, env env) error {
	env.tap(ctx, "babel", env.globals(ctx))
	return nil
}

func script(path string) action {
	return func(ctx context.Context, env env) error {
		src, err := os.ReadFile(path)
		if err != nil {
			return wrap(err)
		}
		_, err = env.runScript(ctx, path, src, env.globals(ctx), env.output)
		return err
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/reusee/babel/cmds"
	"github.com/reusee/babel/debugs"
	"github.com/reusee/babel/logs"
	"github.com/reusee/babel/modes"
	"github.com/reusee/babel/searches"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stdin := sync.OnceValue(func() string {
		return strings.TrimRight(string(getStdinContent()), "\r\n")
	})

	if len(actions) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			cmds.PrintUsage()
			os.Exit(2)
		}
		// a piped query
		actions = append(actions, runQuery(search, "-"))
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		engine *searches.Engine,
		globals debugs.Globals,
		tap debugs.Tap,
		runScript debugs.RunScript,
		logger logs.Logger,
	) {
		env := env{
			engine:    engine,
			globals:   globals,
			tap:       tap,
			runScript: runScript,
			stdin:     stdin,
			output:    os.Stdout,
		}
		for _, act := range actions {
			if err := act(ctx, env); err != nil {
				logger.DebugContext(ctx, "action failed", "error", err)
				fmt.Fprintln(os.Stderr, "babel: "+userMessage(err))
				os.Exit(1)
			}
		}
	})
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(wrap(err))
	}
	return
}

// Package debugs exposes the engine to Starlark, as an interactive REPL and as a script runner.
package debugs

import (
	"github.com/reusee/babel/logs"
	"github.com/reusee/babel/searches"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Searches searches.Module
	Logs     logs.Module
}

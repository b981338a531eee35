package searches

import (
	"context"

	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/logs"
	"github.com/reusee/babel/pages"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Pages pages.Module
	Logs  logs.Module
}

func (Module) Engine(
	config babelconfigs.Configuration,
	options babelconfigs.SearchOptions,
	logger logs.Logger,
	newSpan logs.NewSpan,
) *Engine {
	return NewEngine(config, options, logger, newSpan)
}

// Search classifies and dispatches free-form input.
type Search func(ctx context.Context, input string) (Result, error)

func (Module) Search(
	engine *Engine,
) Search {
	return engine.Search
}

package pages

import (
	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs babelconfigs.Module
}

// Get generates the page at c under the scope's Configuration.
type Get func(c coords.Coordinates) Page

func (Module) Get(
	config babelconfigs.Configuration,
	logger logs.Logger,
) Get {
	return func(c coords.Coordinates) Page {
		page := Generate(c, config)
		logger.Debug("generate page", "coordinates", c)
		return page
	}
}

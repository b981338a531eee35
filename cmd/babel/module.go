package main

import (
	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/debugs"
	"github.com/reusee/babel/searches"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs  babelconfigs.Module
	Searches searches.Module
	Debugs   debugs.Module
}

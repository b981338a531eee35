package babelconfigs

import (
	"github.com/reusee/babel/configs"
	"github.com/reusee/babel/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

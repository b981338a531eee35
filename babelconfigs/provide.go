package babelconfigs

import (
	"fmt"
	"time"

	"github.com/reusee/babel/cmds"
	"github.com/reusee/babel/configs"
	"github.com/reusee/babel/logs"
	"github.com/reusee/babel/modes"
	"github.com/reusee/babel/vars"
)

var (
	naturalAlphabetFlag = cmds.Var[string]("-alphabet", "natural alphabet of titles and embedded text")
	pageAlphabetFlag    = cmds.Var[string]("-digits", "page alphabet")
	pageLengthFlag      = cmds.Var[int]("-page-length", "runes per page")
	titleLengthFlag     = cmds.Var[int]("-title-length", "runes per title")
	wallsFlag           = cmds.Var[int]("-walls", "wall bound")
	shelvesFlag         = cmds.Var[int]("-shelves", "shelf bound")
	volumesFlag         = cmds.Var[int]("-volumes", "volume bound")
	pagesFlag           = cmds.Var[int]("-pages", "page bound")

	maxAttemptsFlag = cmds.Var[int]("-attempts", "attempt ceiling of brute-force searches")
	timeoutFlag     = cmds.Var[time.Duration]("-timeout", "wall-clock cap of brute-force searches")
	workersFlag     = cmds.Var[int]("-workers", "concurrent search workers")
	policyFlag      = cmds.Var[Policy]("-policy", "literal search policy: scan or embed")
	seedFlag        = cmds.Var[uint64]("-seed", "sampling seed, 0 for a fresh one per search")
)

// Configuration panics on invalid values: nothing can run without one.
func (Module) Configuration(
	loader configs.Loader,
	logger logs.Logger,
) Configuration {
	defaults := DefaultOptions()
	options := Options{
		NaturalAlphabet: vars.FirstNonZero(
			*naturalAlphabetFlag,
			configs.First[string](loader, "natural_alphabet"),
			defaults.NaturalAlphabet,
		),
		PageAlphabet: vars.FirstNonZero(
			*pageAlphabetFlag,
			configs.First[string](loader, "page_alphabet"),
			defaults.PageAlphabet,
		),
		PageLength: vars.FirstNonZero(
			*pageLengthFlag,
			configs.First[int](loader, "page_length"),
			defaults.PageLength,
		),
		TitleLength: vars.FirstNonZero(
			*titleLengthFlag,
			configs.First[int](loader, "title_length"),
			defaults.TitleLength,
		),
		Walls: vars.FirstNonZero(
			*wallsFlag,
			configs.First[int](loader, "walls"),
			defaults.Walls,
		),
		Shelves: vars.FirstNonZero(
			*shelvesFlag,
			configs.First[int](loader, "shelves"),
			defaults.Shelves,
		),
		Volumes: vars.FirstNonZero(
			*volumesFlag,
			configs.First[int](loader, "volumes"),
			defaults.Volumes,
		),
		Pages: vars.FirstNonZero(
			*pagesFlag,
			configs.First[int](loader, "pages"),
			defaults.Pages,
		),
	}
	ret, err := New(options)
	if err != nil {
		panic(fmt.Errorf("configuration: %w", err))
	}
	logger.Debug("configuration", "config", ret)
	return ret
}

func (Module) SearchOptions(
	loader configs.Loader,
	logger logs.Logger,
	defaultSeed modes.DefaultSeed,
) SearchOptions {
	defaults := DefaultSearchOptions()

	timeout := *timeoutFlag
	if timeout == 0 {
		if str := configs.First[string](loader, "timeout"); str != "" {
			d, err := time.ParseDuration(str)
			if err != nil {
				panic(fmt.Errorf("search options: timeout: %w", err))
			}
			timeout = d
		}
	}

	ret := SearchOptions{
		MaxAttempts: vars.FirstNonZero(
			*maxAttemptsFlag,
			configs.First[int](loader, "max_attempts"),
			defaults.MaxAttempts,
		),
		Timeout: timeout,
		Workers: vars.FirstNonZero(
			*workersFlag,
			configs.First[int](loader, "workers"),
			defaults.Workers,
		),
		Policy: vars.FirstNonZero(
			*policyFlag,
			configs.First[Policy](loader, "policy"),
			defaults.Policy,
		),
		Seed: vars.FirstNonZero(
			*seedFlag,
			configs.First[uint64](loader, "seed"),
			uint64(defaultSeed),
		),
	}
	if err := ret.Validate(); err != nil {
		panic(fmt.Errorf("search options: %w", err))
	}
	logger.Debug("search options", "options", ret)
	return ret
}

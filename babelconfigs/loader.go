package babelconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/babel/cmds"
	"github.com/reusee/babel/configs"
	"github.com/reusee/babel/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "read this cue file before the default locations")

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	paths := append([]string(nil), *configFiles...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	filenames := []string{
		"babel.cue",
		".babel.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, "babel", filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return NewLoader(paths)
}

// NewLoader validates files against the babel schema.
func NewLoader(paths []string) configs.Loader {
	return configs.NewLoader(paths, schema)
}

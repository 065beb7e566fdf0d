package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/jpicheck/internal/config"
	"github.com/danieljhkim/jpicheck/internal/engine"
	"github.com/danieljhkim/jpicheck/internal/fsops"
)

// loadConfig merges the config file, environment and the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return config.Load(config.LoadOptions{
		ConfigFile: configFile,
		SearchDir:  cwd,
		Flags:      cmd.Flags(),
	})
}

// newLogger creates the stderr logger used by the engine.
func newLogger(level string, w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	}), nil
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(logger *log.Logger) *engine.Engine {
	return engine.New(fsops.NewRealFS(), logger)
}

// outputJSON outputs a value as JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/cloudgraph/pkg/config"
	"github.com/matzehuels/cloudgraph/pkg/errors"
)

// resolveInput returns the CSV to read: the first argument when given,
// otherwise the first file in cfg.DataDir matching cfg.Pattern in lexical
// order. Both cases fail with FILE_NOT_FOUND when nothing usable exists.
func resolveInput(args []string, cfg config.Config) (string, error) {
	if len(args) > 0 && args[0] != "" {
		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			return "", errors.New(errors.ErrCodeFileNotFound,
				"CSV not found at %s. Provide path as first argument.", path)
		}
		if info.IsDir() {
			return "", errors.New(errors.ErrCodeInvalidPath, "%s is a directory, not a CSV file", path)
		}
		return path, nil
	}

	matches, err := filepath.Glob(filepath.Join(cfg.DataDir, cfg.Pattern))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "pattern %q", cfg.Pattern)
	}
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeFileNotFound,
		"no CSV files found in %s. Provide path as first argument.", cfg.DataDir)
}

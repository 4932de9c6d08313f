package config

import (
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/wixproject/internal/foundation/errors"
	"git.home.luguber.info/inful/wixproject/internal/logfields"
	"github.com/joho/godotenv"
)

// .env.local is loaded first: godotenv never overrides a variable that is already set, so
// the first file to define a key wins.
var envFileNames = []string{".env.local", ".env"}

// loadEnvFiles loads the environment files found in dir into the process environment.
// Variables already present in the environment are left untouched. Missing files are
// skipped. It returns the paths that were loaded.
func loadEnvFiles(dir string) ([]string, error) {
	var loaded []string
	for _, name := range envFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load environment file").
				WithContext(logfields.KeyPath, path).
				Build()
		}
		slog.Debug("Loaded environment file", logfields.EnvFile(path))
		loaded = append(loaded, path)
	}
	return loaded, nil
}

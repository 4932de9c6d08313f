//go:build !windows

package config

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic writes data to a temporary file, fsyncs it and renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}

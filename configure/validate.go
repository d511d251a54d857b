package configure

import (
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Validate checks that srcDir exists and creates buildDir when missing.
func Validate(srcDir, buildDir string) error {
	if _, err := os.Stat(srcDir); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSourceDirectory, srcDir)
	}
	if info, err := os.Stat(buildDir); err == nil {
		if !info.IsDir() {
			return &fs.PathError{Op: "use build directory", Path: buildDir, Err: syscall.ENOTDIR}
		}
		return nil
	}
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("create build directory %s: %w", buildDir, err)
	}
	return nil
}

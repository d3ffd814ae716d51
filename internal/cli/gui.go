package cli

import (
	"os"
	"runtime"
)

// guiAvailable reports whether the form window can be shown. On Linux that
// requires a running display server; macOS and Windows always have one.
func guiAvailable() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

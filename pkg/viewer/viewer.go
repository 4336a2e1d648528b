// Package viewer opens rendered images in the platform's default viewer.
package viewer

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Command returns the program and arguments that open path on goos.
func Command(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default: // "linux", "freebsd", "openbsd", "netbsd"
		return "xdg-open", []string{path}
	}
}

// Open starts the default viewer for path and returns without waiting for it to exit.
// The viewer outlives ctx.
func Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := Command(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	// reap the child in the background
	go func() { _ = cmd.Wait() }()
	return nil
}

package ui

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Opener opens a URL or file path outside the terminal.
type Opener interface {
	Open(url string) error
}

// Browser opens URLs with the platform's default handler.
type Browser struct{}

func (Browser) Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("open not supported on %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child without blocking the event loop.
	go func() { _ = cmd.Wait() }()
	return nil
}

type loggingOpener struct {
	Opener
	logger *slog.Logger
}

func (o loggingOpener) Open(url string) error {
	if err := o.Opener.Open(url); err != nil {
		o.logger.Error("opening link", "url", url, "error", err)
		return err
	}
	o.logger.Info("opened link", "url", url)
	return nil
}

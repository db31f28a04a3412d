package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OSOpenCmd builds the platform command that hands an article link to
// the default browser. Tests swap it out.
var OSOpenCmd = func(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "linux":
		return exec.Command("xdg-open", url) //nolint:gosec
	default:
		return nil
	}
}

// openBrowser launches the browser without waiting for it to exit.
func openBrowser(url string) error {
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return fmt.Errorf("no browser opener for %s", runtime.GOOS)
	}
	return cmd.Start()
}

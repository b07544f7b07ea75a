package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"webdash/internal/localization"
	"webdash/internal/logging"
)

type clipboardMethod uint8

const (
	clipboardMethodSystem clipboardMethod = iota
	clipboardMethodOSC52
)

func (c clipboardMethod) String() string {
	if c == clipboardMethodOSC52 {
		return "osc52"
	}
	return "system"
}

var clipboardWriteAll = clipboard.WriteAll
var clipboardWriteOSC52 = writeOSC52Clipboard

func copyTextToClipboard(text string) (clipboardMethod, error) {
	err := clipboardWriteAll(text)
	if err == nil {
		return clipboardMethodSystem, nil
	}
	oscErr := clipboardWriteOSC52(text)
	if oscErr == nil {
		return clipboardMethodOSC52, nil
	}
	return clipboardMethodSystem, combineClipboardErrors(err, oscErr)
}

// copyStatus copies the status line and replaces it with the localized
// result.
func (m *Model) copyStatus() {
	loc := m.machine.Localization()
	text := m.machine.Message()
	method, err := copyTextToClipboard(text)
	if err != nil {
		m.logger.Warn("copy failed", logging.Err(err))
		m.machine.SetMessage(localization.Expand(loc.Msg("copy_error"), "error", err.Error()))
		return
	}
	m.logger.Debug("status copied", logging.F("method", method.String()))
	m.machine.SetMessage(loc.Msg("copy_success"))
}

func writeOSC52Clipboard(text string) error {
	if !shouldAttemptOSC52() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text)
}

func writeOSC52Sequence(w io.Writer, text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		if _, err := seq.WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	case strings.HasPrefix(strings.ToLower(os.Getenv("TERM")), "screen"):
		_, err := seq.Screen().WriteTo(w)
		return err
	}
	_, err := seq.WriteTo(w)
	return err
}

func shouldAttemptOSC52() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("WEBDASH_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(os.Getenv("TERM"))
	return termName != "" && !strings.EqualFold(termName, "dumb")
}

func combineClipboardErrors(systemErr, oscErr error) error {
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard available; OSC52 fallback failed: %s", humanizeClipboardError(oscErr))
	}
	return fmt.Errorf("system clipboard failed: %s; OSC52 fallback failed: %s",
		humanizeClipboardError(systemErr), humanizeClipboardError(oscErr))
}

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "exit status 1" {
		return "clipboard helper exited with status 1"
	}
	return msg
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}

package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"

	"webdash/internal/logging"
)

// localizationChangedMsg reports an edited override bundle.
type localizationChangedMsg struct {
	language string
}

// LocalizationWatcher reports writes to the *.toml files of the override
// directory.
type LocalizationWatcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	logger  logging.Logger
}

func NewLocalizationWatcher(dir string, logger logging.Logger) (*LocalizationWatcher, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create localization dir: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	lw := &LocalizationWatcher{
		watcher: w,
		changes: make(chan string, 8),
		done:    make(chan struct{}),
		logger:  logger.With(logging.F("component", "localization_watcher")),
	}
	go lw.run()
	return lw, nil
}

func (w *LocalizationWatcher) run() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			lang, ok := bundleLanguage(ev)
			if !ok {
				continue
			}
			select {
			case w.changes <- lang:
			default:
				// A reload is already pending.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("localization watch error", logging.Err(err))
		}
	}
}

func bundleLanguage(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return "", false
	}
	name := filepath.Base(ev.Name)
	if filepath.Ext(name) != ".toml" {
		return "", false
	}
	return strings.TrimSuffix(name, ".toml"), true
}

// next waits for the following change. It yields nil once the watcher is
// closed.
func (w *LocalizationWatcher) next() tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		lang, ok := <-w.changes
		if !ok {
			return nil
		}
		return localizationChangedMsg{language: lang}
	}
}

func (w *LocalizationWatcher) Close() error {
	if w == nil {
		return nil
	}
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

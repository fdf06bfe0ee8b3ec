package main

import (
	"github.com/dkoosis/ghannotate/internal/logging"
	"github.com/dkoosis/ghannotate/pkg/annotate"
)

// hostBase is the shared reporter behavior the CLI supplies in place of a
// test framework. Its hooks are reached through the active sink, which in
// gha mode is the annotate.Reporter embedding it.
type hostBase struct {
	running   bool
	started   int
	completed int
}

func (h *hostBase) OnRunStart() {
	h.running = true
	logging.Debug("run started")
}

func (h *hostBase) OnBrowserStart(browser annotate.Browser) {
	h.started++
	logging.Debug("browser started", "browser", browser.Name)
}

func (h *hostBase) OnBrowserComplete(browser annotate.Browser) {
	h.completed++
	logging.Debug("browser complete", "browser", browser.Name)
}

func (h *hostBase) OnRunComplete() {
	h.running = false
	logging.Debug("run complete", "browsers", h.started)
}

// browserTracker fires browser lifecycle hooks as records arrive.
type browserTracker struct {
	hooks    annotate.Base
	seen     map[string]bool
	browsers []annotate.Browser
}

func newBrowserTracker(hooks annotate.Base) *browserTracker {
	return &browserTracker{hooks: hooks, seen: make(map[string]bool)}
}

// observe starts a browser the first time one of its records is read.
func (t *browserTracker) observe(browser annotate.Browser) {
	if t.seen[browser.Name] {
		return
	}
	t.seen[browser.Name] = true
	t.browsers = append(t.browsers, browser)
	t.hooks.OnBrowserStart(browser)
}

// complete finishes every started browser, then the run.
func (t *browserTracker) complete() {
	for _, b := range t.browsers {
		t.hooks.OnBrowserComplete(b)
	}
	t.hooks.OnRunComplete()
}

// Package watch hot-reloads exception class descriptors from disk,
// grounded on the teacher's internal/runtime/vfs/watch_fsnotify.go
// wrapper around fsnotify.
package watch

import (
	"bufio"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/exceptrt/class"
)

// Watcher reloads *.excclass descriptor files into the class registry
// whenever they're written. Each descriptor file holds one class per
// line, "Name" or "Name ParentName"; ParentName defaults to Throwable.
type Watcher struct {
	w       *fsnotify.Watcher
	constr  string
	evC     chan Reload
	erC     chan error
	modules map[string]int // descriptor path -> module sequence number, for constraint naming
}

// Reload reports the result of reloading one descriptor file.
type Reload struct {
	Path    string
	Classes []*class.Class
	Err     error
}

// New creates a Watcher whose reloads are registered under constraint
// (a semver range checked against class.EngineVersion, e.g. "^1.0.0").
func New(constraint string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		w:       fw,
		constr:  constraint,
		evC:     make(chan Reload, 32),
		erC:     make(chan error, 1),
		modules: map[string]int{},
	}

	go w.loop()

	return w, nil
}

// Watch adds a directory or file to the watch set.
func (w *Watcher) Watch(path string) error {
	return w.w.Add(path)
}

// Reloads streams the outcome of each reload, successful or not.
func (w *Watcher) Reloads() <-chan Reload { return w.evC }

// Errors streams fsnotify's own errors (distinct from a parse/register
// failure, which arrives on Reloads as a Reload with a non-nil Err).
func (w *Watcher) Errors() <-chan error { return w.erC }

// Close stops watching and releases the underlying OS resources.
func (w *Watcher) Close() error {
	return w.w.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if !strings.HasSuffix(ev.Name, ".excclass") {
				continue
			}

			w.evC <- w.reload(ev.Name)

		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}

			w.erC <- err
		}
	}
}

func (w *Watcher) reload(path string) Reload {
	descriptors, err := parseDescriptorFile(path)
	if err != nil {
		return Reload{Path: path, Err: err}
	}

	defined, err := class.RegisterModule(path, w.constr, descriptors...)

	return Reload{Path: path, Classes: defined, Err: err}
}

func parseDescriptorFile(path string) ([]class.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []class.Descriptor

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		d := class.Descriptor{Name: fields[0], ParentName: "Throwable"}
		if len(fields) > 1 {
			d.ParentName = fields[1]
		}

		out = append(out, d)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

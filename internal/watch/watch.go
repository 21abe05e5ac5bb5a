// Package watch notifies changes to a single file.
//
// Editors and atomic writers often replace files instead of writing
// them in place, so the parent directory is watched and events are
// filtered by name. Bursts of events are debounced.
package watch

import "sync"
import "time"
import "path/filepath"

import "github.com/fsnotify/fsnotify"
import "github.com/sirupsen/logrus"

// Quiet period after the last event before the callback fires.
const DebounceInterval = 50*time.Millisecond

type Watcher struct {
	fw *fsnotify.Watcher
	path string
	done chan struct{}

	mutex sync.Mutex
	timer *time.Timer
	stopped bool
}

// Starts watching the given file. onChange is called from a
// background goroutine after the file is written, created or renamed
// into place. The file itself doesn't need to exist yet, but its
// directory must.
func New(path string, onChange func(path string)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil { return nil, err }
	fw, err := fsnotify.NewWatcher()
	if err != nil { return nil, err }
	err = fw.Add(filepath.Dir(absPath))
	if err != nil {
		fw.Close()
		return nil, err
	}

	watcher := &Watcher{ fw: fw, path: absPath, done: make(chan struct{}) }
	go watcher.loop(onChange)
	return watcher, nil
}

// Returns the absolute path of the watched file.
func (self *Watcher) Path() string { return self.path }

func (self *Watcher) loop(onChange func(string)) {
	for {
		select {
		case event, ok := <-self.fw.Events:
			if !ok { return }
			if filepath.Clean(event.Name) != self.path { continue }
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			self.schedule(onChange)
		case err, ok := <-self.fw.Errors:
			if !ok { return }
			logrus.WithError(err).WithField("path", self.path).Debug("watch error")
		case <-self.done:
			return
		}
	}
}

func (self *Watcher) schedule(onChange func(string)) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.stopped { return }
	if self.timer != nil { self.timer.Stop() }
	self.timer = time.AfterFunc(DebounceInterval, func() {
		self.mutex.Lock()
		stopped := self.stopped
		self.mutex.Unlock()
		if !stopped { onChange(self.path) }
	})
}

// Stops watching and releases resources. Safe to call multiple times.
func (self *Watcher) Stop() error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.stopped { return nil }
	self.stopped = true
	if self.timer != nil { self.timer.Stop() }
	close(self.done)
	return self.fw.Close()
}

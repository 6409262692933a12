// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - notify when a single file changes or is removed
package watcher

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

// Watcher - delivers change and remove events for one file
//
// events are coalesced: if a previous event has not been received yet
// a new one of the same kind is dropped
type Watcher struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	shutdown chan struct{}
	finished chan struct{}
	started  bool
	stopped  bool
}

// New - create a watcher for an existing file
func New(targetFile string, log *logger.L) (*Watcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if info, err := os.Stat(filePath); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrFileNotFound
		}
		return nil, err
	} else if info.IsDir() {
		return nil, fault.ErrInvalidValue
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
	}, nil
}

// FilePath - absolute path of the watched file
func (w *Watcher) FilePath() string {
	return w.filePath
}

// Changes - receives when the file is written
func (w *Watcher) Changes() <-chan struct{} {
	return w.change
}

// Removed - receives once when the file is removed or renamed,
// after which no more events are delivered
//
// Stop must still be called to end the background go routine
func (w *Watcher) Removed() <-chan struct{} {
	return w.remove
}

// Start - begin watching in a background go routine
func (w *Watcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.stopped {
		return fault.ErrWatcherStopped
	}
	if w.started {
		return fault.ErrAlreadyInitialised
	}

	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.started = true

	go w.loop()
	return nil
}

// Stop - end watching and release the underlying watcher
//
// a stopped watcher cannot be started again
func (w *Watcher) Stop() {
	w.Lock()
	defer w.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	if w.started {
		w.started = false
		close(w.shutdown)
		<-w.finished
	}
	w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.finished)

	base := filepath.Base(w.filePath)
	for {
		select {
		case <-w.shutdown:
			w.log.Info("shutting down")
			return

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watch error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if isRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.remove, "remove")
				<-w.shutdown
				return
			}

			if filepath.Base(event.Name) != base {
				w.log.Debugf("event for %s does not match, discard", event.Name)
				continue
			}

			if isChange(event) {
				w.sendEvent(w.change, "change")
			}
		}
	}
}

func (w *Watcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the given config file and sends a freshly loaded
// config on the returned channel each time the file is written or
// replaced. The channel holds at most one pending config, the latest.
// Files that fail to load are logged and skipped. Watching stops and
// the channel is closed when ctx is done.
func Watch(ctx context.Context, file string) (<-chan *Config, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	ch := make(chan *Config, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					slog.Error("config reload failed", "file", abs, "err", err)
					continue
				}
				select {
				case <-ch:
				default:
				}
				ch <- cfg
				slog.Info("config reloaded", "file", abs)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher error: " + err.Error())
			}
		}
	}()
	return ch, nil
}

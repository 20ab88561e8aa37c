package utils

import (
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"path"
	"time"
)

// config rewrites arrive as bursts of Write events; collapse them
const watchDebounce = 2 * time.Second

func watchLoop(filePath string, watcher *fsnotify.Watcher, reload func()) {
	var lastReload time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != filePath {
				continue
			}
			if event.Op != fsnotify.Write && event.Op != fsnotify.Create {
				continue
			}
			if time.Since(lastReload) < watchDebounce {
				continue
			}
			lastReload = time.Now()
			log.WithField("name", event.Name).Info("File changed")
			reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Error("File watcher")
		}
	}
}

// WatchFile invokes reload whenever filePath is rewritten. The parent
// folder is watched so editors that replace the file are still seen.
func WatchFile(filePath string, reload func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	go watchLoop(filePath, watcher, reload)
	err = watcher.Add(path.Dir(filePath))
	return watcher, err
}

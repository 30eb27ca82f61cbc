package session

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch observes the persisted session files and emits an event when
// another process changes them — e.g. a second instance logging out.
// The consumer should re-run Restore on each event. The channel closes
// when the watcher stops (directory removed or watch error).
func Watch(dir string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(events)

		// Debounce: login writes both files back to back. The send
		// happens here in the loop, never from a timer goroutine, so
		// closing events on exit cannot race a pending fire.
		var debounce *time.Timer
		var fire <-chan time.Time
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(event.Name)
				if name != tokenName && name != userName {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.NewTimer(debounceDelay)
				fire = debounce.C

			case <-fire:
				fire = nil
				select {
				case events <- struct{}{}:
				default:
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

package watcher

import "context"

// Watcher monitors the transcript drop directory.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles a newly dropped transcript file.
type EventHandler func(ctx context.Context, filePath string) error

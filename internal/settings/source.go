package settings

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Raw is an undecoded settings document as returned by a Source.
type Raw struct {
	Data   []byte
	Format Format
}

// Source fetches the settings document from wherever it lives.
type Source interface {
	Fetch(ctx context.Context) (Raw, error)
	String() string
}

// Watcher is implemented by sources that can report changes. The channel
// is closed when ctx is done.
type Watcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// FileSource reads the document from a file on disk. Files ending in .yaml
// or .yml are decoded as YAML, everything else as JSON.
type FileSource struct {
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger
}

func (s *FileSource) String() string { return "file:" + s.Path }

func (s *FileSource) Fetch(ctx context.Context) (Raw, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Raw{}, err
	}
	return Raw{Data: data, Format: formatFromPath(s.Path)}, nil
}

func formatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Watch watches the parent directory rather than the file itself so that
// editors which save through a rename keep being observed.
func (s *FileSource) Watch(ctx context.Context) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(s.Path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := s.Debounce
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	target := filepath.Clean(s.Path)

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer fsw.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.LogAttrs(ctx, slog.LevelWarn, "settings file watcher error",
					slog.String("path", s.Path),
					slog.String("error", err.Error()),
				)
			}
		}
	}()
	return changes, nil
}

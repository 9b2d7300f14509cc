package settings

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// Snapshot is one resolved settings document. Snapshots are never modified
// after they are created; a reload produces a new one.
type Snapshot struct {
	Document Document
	Source   string
	LoadedAt time.Time
	// Fallback is set when Document came from Defaults because the source
	// could not be fetched or decoded.
	Fallback bool
}

// LoadResult is told about every load outcome. Metrics hook in here.
type LoadResult func(fallback bool)

// Load fetches and decodes the document from src. It never fails: any
// error is logged and the defaults are returned instead.
func Load(ctx context.Context, src Source, logger *slog.Logger) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}
	snap := &Snapshot{Source: src.String(), LoadedAt: time.Now()}

	raw, err := src.Fetch(ctx)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "failed to fetch settings, using defaults",
			slog.String("source", src.String()),
			slog.String("error", err.Error()),
		)
		snap.Document = Defaults()
		snap.Fallback = true
		return snap
	}

	doc, err := Decode(raw)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "failed to decode settings, using defaults",
			slog.String("source", src.String()),
			slog.String("error", err.Error()),
		)
		snap.Document = Defaults()
		snap.Fallback = true
		return snap
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "settings loaded",
		slog.String("source", src.String()),
		slog.String("size", humanize.Bytes(uint64(len(raw.Data)))),
		slog.String("business", doc.BusinessName()),
		slog.Duration("loadingDelay", doc.LoadingDelay()),
	)
	snap.Document = doc
	return snap
}

// Store holds the current snapshot and tells subscribers when it changes.
type Store struct {
	src    Source
	logger *slog.Logger
	onLoad LoadResult

	current atomic.Pointer[Snapshot]

	mu   sync.Mutex
	subs map[chan *Snapshot]struct{}
}

func NewStore(src Source, logger *slog.Logger, onLoad LoadResult) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		src:    src,
		logger: logger,
		onLoad: onLoad,
		subs:   make(map[chan *Snapshot]struct{}),
	}
	s.current.Store(&Snapshot{Source: src.String()})
	return s
}

// Get returns the current snapshot. Before the first Load completes the
// snapshot holds an empty Document.
func (s *Store) Get() *Snapshot {
	return s.current.Load()
}

// Load resolves the document from the source and publishes it.
func (s *Store) Load(ctx context.Context) *Snapshot {
	snap := Load(ctx, s.src, s.logger)
	if s.onLoad != nil {
		s.onLoad(snap.Fallback)
	}
	s.publish(snap)
	return snap
}

func (s *Store) publish(snap *Snapshot) {
	s.current.Store(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		// Subscribers only care about the latest snapshot.
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// Subscribe returns a channel receiving every snapshot published after the
// call. Slow readers only see the newest one. cancel must be called to
// release the subscription.
func (s *Store) Subscribe() (<-chan *Snapshot, func()) {
	ch := make(chan *Snapshot, 1)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// Watch reloads the document every time the source reports a change. It
// returns immediately when the source cannot watch.
func (s *Store) Watch(ctx context.Context) error {
	w, ok := s.src.(Watcher)
	if !ok {
		return nil
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for range changes {
			s.logger.LogAttrs(ctx, slog.LevelInfo, "settings changed, reloading",
				slog.String("source", s.src.String()),
			)
			s.Load(ctx)
		}
	}()
	return nil
}

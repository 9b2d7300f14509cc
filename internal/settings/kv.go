package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
)

// KVSource reads the document from a JetStream key-value bucket. The value
// is JSON.
type KVSource struct {
	KV  jetstream.KeyValue
	Key string
}

func (s *KVSource) String() string { return fmt.Sprintf("kv:%s/%s", s.KV.Bucket(), s.Key) }

func (s *KVSource) Fetch(ctx context.Context) (Raw, error) {
	entry, err := s.KV.Get(ctx, s.Key)
	if err != nil {
		return Raw{}, err
	}
	return Raw{Data: entry.Value(), Format: FormatJSON}, nil
}

// Seed stores data only when the key holds no value yet.
func (s *KVSource) Seed(ctx context.Context, data []byte) (bool, error) {
	_, err := s.KV.Create(ctx, s.Key, data)
	if errors.Is(err, jetstream.ErrKeyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *KVSource) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := s.KV.Watch(ctx, s.Key, jetstream.UpdatesOnly())
	if err != nil {
		return nil, err
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-watcher.Updates():
				if !ok {
					return
				}
				if entry == nil {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			}
		}
	}()
	return changes, nil
}

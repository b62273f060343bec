// Package persist stores per-player game snapshots as JSON files.
package persist

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/askorupa/adbot/internal/observe"
	"github.com/askorupa/adbot/pkg/adventure"
	"github.com/askorupa/adbot/pkg/tower"

	"github.com/rs/zerolog/log"
)

// Store persists player snapshots. Save is fire-and-forget: the caller
// never blocks on disk.
type Store interface {
	Save(player string, snapshot []byte)
	Close()
}

// FileStore writes one JSON file per player. Writes are coalesced per
// player: while a write is in flight only the latest pending snapshot is
// kept, so a burst of actions costs at most two disk writes.
type FileStore struct {
	dir     string
	metrics *observe.Metrics

	mu      sync.Mutex
	writers map[string]*playerWriter
	wg      sync.WaitGroup
	closed  bool
}

type playerWriter struct {
	path    string
	pending []byte
	running bool
}

// NewFileStore creates the snapshot directory if needed.
func NewFileStore(dir string, metrics *observe.Metrics) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStore{
		dir:     dir,
		metrics: metrics,
		writers: make(map[string]*playerWriter),
	}, nil
}

// Save queues the snapshot for the player, replacing any not-yet-written
// one. Calls after Close are dropped.
func (s *FileStore) Save(player string, snapshot []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	w, ok := s.writers[player]
	if !ok {
		w = &playerWriter{path: filepath.Join(s.dir, fileName(player))}
		s.writers[player] = w
	}
	w.pending = snapshot
	if !w.running {
		w.running = true
		s.wg.Add(1)
		go s.drain(player, w)
	}
}

// drain writes pending snapshots until none is left.
func (s *FileStore) drain(player string, w *playerWriter) {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		snapshot := w.pending
		w.pending = nil
		if snapshot == nil {
			w.running = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		if err := writeAtomic(w.path, snapshot); err != nil {
			s.metrics.PersistenceErrors.Add(context.Background(), 1)
			log.Error().Err(err).Str("player", player).Msg("Failed to persist snapshot")
		}
	}
}

// Close waits for all queued writes to land. The store must not be used
// afterwards.
func (s *FileStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}

// writeAtomic lands the snapshot via temp file + rename so readers never
// observe a partial file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// fileName maps a player name onto a safe snapshot file name.
func fileName(player string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, player)
	return mapped + ".json"
}

// LoadAll restores every machine snapshot found in the directory. Files
// that fail to parse are logged and skipped.
func LoadAll(dir string, cfg *tower.Config) ([]*adventure.Machine, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	var machines []*adventure.Machine
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to read snapshot")
			continue
		}
		machine, err := adventure.LoadMachine(bytes.NewReader(data), cfg)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to load snapshot")
			continue
		}
		machines = append(machines, machine)
	}
	return machines, nil
}

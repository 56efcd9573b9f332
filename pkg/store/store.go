package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"PantryOS-Server/entities"
)

var ErrStoreClosed = errors.New("store is closed")

// Store owns the on-disk state document. Every Read and Mutate goes through
// a single mailbox goroutine, so operations run strictly in arrival order
// and at most one read/modify/write cycle is in flight at a time. A failing
// operation is logged and reported to its caller only; the queue keeps
// draining and the next operation reloads the document from disk.
type Store struct {
	path string
	log  *zap.Logger

	mu     sync.RWMutex
	closed bool
	ops    chan *operation
	done   chan struct{}
}

type operation struct {
	mutator func(*entities.AppState) error
	persist bool
	reply   chan result
}

type result struct {
	state *entities.AppState
	err   error
}

func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		path: path,
		log:  log,
		ops:  make(chan *operation),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

// Read returns the current document, creating it with empty collections when
// the file is missing or unreadable.
func (s *Store) Read(ctx context.Context) (*entities.AppState, error) {
	return s.enqueue(ctx, &operation{reply: make(chan result, 1)})
}

// Mutate reloads the document, applies fn to it in place, and persists the
// whole document iff fn returned nil. The returned state is the persisted
// one; fn may capture whatever record it touched.
func (s *Store) Mutate(ctx context.Context, fn func(*entities.AppState) error) (*entities.AppState, error) {
	return s.enqueue(ctx, &operation{mutator: fn, persist: true, reply: make(chan result, 1)})
}

// Close stops the mailbox after the queued operations drain. The store must
// not be used afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.ops)
	}
	s.mu.Unlock()
	<-s.done
}

// enqueue submits the operation and waits for its result. The context only
// covers the wait: an operation already queued still runs to completion even
// if its caller has gone away.
func (s *Store) enqueue(ctx context.Context, op *operation) (*entities.AppState, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, ErrStoreClosed
	}

	select {
	case s.ops <- op:
		s.mu.RUnlock()
	case <-ctx.Done():
		s.mu.RUnlock()
		return nil, ctx.Err()
	}

	select {
	case res := <-op.reply:
		return res.state, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) loop() {
	defer close(s.done)
	for op := range s.ops {
		state, err := s.execute(op)
		if err != nil {
			s.log.Error("state operation failed", zap.Error(err))
		}
		// Reply channels are buffered, an abandoned caller cannot stall
		// the queue.
		op.reply <- result{state: state, err: err}
	}
}

func (s *Store) execute(op *operation) (*entities.AppState, error) {
	state, err := s.load()
	if err != nil {
		return nil, err
	}

	if op.mutator != nil {
		if err := op.mutator(state); err != nil {
			return nil, err
		}
	}

	if op.persist {
		if err := s.save(state); err != nil {
			return nil, err
		}
	}

	return state, nil
}

// load reads the state file, healing the two recoverable failure modes:
// a missing file is created with defaults, and an unparseable one is
// rewritten with defaults, trading the unreadable content for availability.
func (s *Store) load() (*entities.AppState, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Warn("state file missing, creating a new one with defaults",
				zap.String("path", s.path))
			state := entities.DefaultState()
			if err := s.save(state); err != nil {
				return nil, err
			}
			return state, nil
		}
		return nil, err
	}

	state := &entities.AppState{}
	if err := json.Unmarshal(raw, state); err != nil {
		s.log.Warn("state file corrupted or invalid, recreating with defaults",
			zap.String("path", s.path), zap.Error(err))
		state = entities.DefaultState()
		if err := s.save(state); err != nil {
			return nil, err
		}
		return state, nil
	}

	state.Normalize()
	return state, nil
}

// save writes the whole document as pretty-printed, newline-terminated JSON.
// The payload lands in a temp file first and is renamed over the target, so
// readers never observe a half-written document.
func (s *Store) save(state *entities.AppState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

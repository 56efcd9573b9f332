package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"PantryOS-Server/entities"
)

// SettingsStore persists the configuration singleton in its own file, kept
// in memory between updates. Unlike the state document it is tiny and only
// written on PATCH, so a mutex is enough.
type SettingsStore struct {
	path string
	log  *zap.Logger

	mu      sync.Mutex
	current entities.Settings
}

// NewSettingsStore loads the settings file, falling back to the provided
// defaults field by field. A missing file is created with the defaults; an
// unreadable one is left alone and the defaults are used for the session.
func NewSettingsStore(path string, defaults entities.Settings, log *zap.Logger) (*SettingsStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &SettingsStore{path: path, log: log, current: defaults}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := s.persist(defaults); err != nil {
				return nil, err
			}
			log.Info("config file not found, created with defaults", zap.String("path", path))
			return s, nil
		}
		log.Warn("unable to read config file, using defaults", zap.Error(err))
		return s, nil
	}

	loaded := defaults
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Warn("config file corrupted, using defaults", zap.Error(err))
		return s, nil
	}
	s.current = loaded
	log.Info("config file loaded", zap.String("path", path))
	return s, nil
}

func (s *SettingsStore) Get() entities.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update persists the new settings and makes them current. The in-memory
// copy only changes when the write succeeded.
func (s *SettingsStore) Update(next entities.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(next); err != nil {
		return err
	}
	s.current = next
	return nil
}

func (s *SettingsStore) persist(settings entities.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')
	return os.WriteFile(s.path, payload, 0o644)
}

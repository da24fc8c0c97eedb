package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileStore persists a profile as a TOML file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load decodes the file over the defaults
// Missing keys keep their default values; an unreadable or corrupt file yields defaults
func (s *FileStore) Load() Profile {
	p, err := s.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("profile: load failed, using defaults: %v", err)
		}
		return Default()
	}
	return p
}

func (s *FileStore) read() (Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Profile{}, err
	}

	p := Default()
	if _, err := toml.Decode(string(data), &p); err != nil {
		return Profile{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return p, nil
}

// Save writes the profile atomically, logging any failure
func (s *FileStore) Save(p Profile) {
	if err := s.write(p); err != nil {
		log.Printf("profile: save failed: %v", err)
	}
}

func (s *FileStore) write(p Profile) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".profile-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

package recent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

const (
	dbFileName = "imageviewer.db"
	appName    = "imageviewer"
	// FoldersBucket holds the recent folder list.
	FoldersBucket = "RecentFolders"
	foldersKey    = "folders"
)

// Store keeps a List in a bbolt database so it survives restarts.
type Store struct {
	db   *bolt.DB
	list *List
	log  zerolog.Logger
}

// DefaultPath returns the database path under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, dbFileName), nil
}

// Open opens or creates the database at dbPath and loads the saved list.
// An empty dbPath selects DefaultPath.
func Open(dbPath string, capacity int, logger zerolog.Logger) (*Store, error) {
	if dbPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", dbPath, err)
	}
	logger.Debug().Str("path", dbPath).Msg("using recent folders database")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open recent folders database %s: %w", dbPath, err)
	}

	s := &Store{db: db, list: NewList(capacity), log: logger}
	var saved []string
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(FoldersBucket))
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", FoldersBucket, err)
		}
		saved, err = decodeList(b.Get([]byte(foldersKey)))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	// saved is newest first; add oldest first to rebuild the same order
	for i := len(saved) - 1; i >= 0; i-- {
		s.list.Add(saved[i])
	}
	return s, nil
}

// Add records dir as the most recent folder and saves the list.
func (s *Store) Add(dir string) error {
	s.list.Add(dir)
	return s.save()
}

// Remove forgets dir and saves the list.
func (s *Store) Remove(dir string) error {
	s.list.Remove(dir)
	return s.save()
}

// List returns the remembered folders, newest first.
func (s *Store) List() []string {
	return s.list.Items()
}

// Clear forgets every folder.
func (s *Store) Clear() error {
	s.list.Clear()
	return s.save()
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) save() error {
	data, err := encodeList(s.list.Items())
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(FoldersBucket))
		if b == nil {
			return fmt.Errorf("bucket %s not found", FoldersBucket)
		}
		if err := b.Put([]byte(foldersKey), data); err != nil {
			return fmt.Errorf("failed to save recent folders: %w", err)
		}
		return nil
	})
}

func encodeList(list []string) ([]byte, error) {
	return json.Marshal(list)
}

func decodeList(data []byte) ([]string, error) {
	if data == nil {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("corrupt recent folders entry: %w", err)
	}
	return list, nil
}

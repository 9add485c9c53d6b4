package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"zendo/models"
)

const (
	defaultDataFile   = "tasks.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"
)

// FileTaskStore persists the task collection to a single file. It supports
// JSON, YAML, and TOML encodings, guards the file with an advisory lock,
// and keeps a SHA-256 checksum sidecar to detect corruption.
//
// A missing, corrupt, or tampered data file loads as the empty collection;
// the condition is logged to stderr and never propagated as an error.
type FileTaskStore struct {
	filePath string
	flk      *flock.Flock
	format   string
}

// NewFileTaskStore creates an uninitialized FileTaskStore; Initialize must
// be called before use.
func NewFileTaskStore() *FileTaskStore {
	return &FileTaskStore{}
}

// Initialize configures the store. It expects a 'dataFile' key with the
// path to the data file (default tasks.json) and an optional
// 'dataFileFormat' of json, yaml, or toml.
func (s *FileTaskStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s (supported: json, yaml, toml)", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if _, err := os.Stat(s.filePath); errors.Is(err, fs.ErrNotExist) {
		f, createErr := os.OpenFile(s.filePath, os.O_CREATE|os.O_RDWR, 0o644)
		if createErr != nil {
			return fmt.Errorf("failed to create data file %s: %w", s.filePath, createErr)
		}
		_ = f.Close()
	}
	return nil
}

func calculateChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Load reads the persisted collection. Recovery policy: anything that
// prevents a clean decode — missing file, checksum mismatch, malformed
// content — yields an empty collection and a stderr notice.
func (s *FileTaskStore) Load() (models.TaskList, error) {
	if err := s.flk.Lock(); err != nil {
		return emptyList(), fmt.Errorf("failed to acquire lock for load: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	return s.loadInternal(), nil
}

func (s *FileTaskStore) loadInternal() models.TaskList {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s, starting with an empty task list: %v\n", s.filePath, err)
		}
		return emptyList()
	}
	if len(data) == 0 {
		return emptyList()
	}

	checksumFilePath := s.filePath + checksumSuffix
	if expected, err := os.ReadFile(checksumFilePath); err == nil {
		if actual := calculateChecksum(data); actual != strings.TrimSpace(string(expected)) {
			fmt.Fprintf(os.Stderr, "Warning: checksum mismatch for %s, starting with an empty task list\n", s.filePath)
			return emptyList()
		}
	}

	list, err := s.decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not decode %s, starting with an empty task list: %v\n", s.filePath, err)
		return emptyList()
	}
	return list
}

// decode unmarshals the persisted envelope. Pre-versioning data was a bare
// task array; it is accepted and migrated to the envelope on the next Save.
func (s *FileTaskStore) decode(data []byte) (models.TaskList, error) {
	var list models.TaskList
	var err error
	switch s.format {
	case formatJSON:
		err = json.Unmarshal(data, &list)
	case formatYAML:
		err = yaml.Unmarshal(data, &list)
	case formatTOML:
		err = toml.Unmarshal(data, &list)
	default:
		return emptyList(), fmt.Errorf("unsupported data format: %s", s.format)
	}

	if err == nil && list.SchemaVersion == 0 && len(list.Tasks) == 0 && s.format == formatJSON {
		var legacy []models.Task
		if legacyErr := json.Unmarshal(data, &legacy); legacyErr == nil {
			return models.TaskList{SchemaVersion: models.CurrentSchemaVersion, Tasks: legacy}, nil
		}
	}
	if err != nil {
		return emptyList(), err
	}
	if list.SchemaVersion == 0 {
		list.SchemaVersion = models.CurrentSchemaVersion
	}
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}
	return list, nil
}

// Save serializes the entire collection. The data file and its checksum
// sidecar are written to temp files first and moved into place so readers
// never observe a partial write.
func (s *FileTaskStore) Save(list models.TaskList) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock file for save: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	list.SchemaVersion = models.CurrentSchemaVersion
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}

	var marshaled []byte
	var err error
	switch s.format {
	case formatJSON:
		marshaled, err = json.MarshalIndent(list, "", "  ")
	case formatYAML:
		marshaled, err = yaml.Marshal(list)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(list); encodeErr == nil {
			marshaled = buf.Bytes()
		} else {
			err = encodeErr
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaled, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary data file %s: %w", tempFilePath, err)
	}
	if err := os.WriteFile(tempChecksumFilePath, []byte(calculateChecksum(marshaled)), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary checksum file %s: %w", tempChecksumFilePath, err)
	}

	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("data file %s updated but checksum file %s was not: %w", s.filePath, checksumFilePath, err)
	}
	return nil
}

// Backup copies the current persisted document to destinationPath. The
// checksum sidecar is not copied; a fresh one is written on the next Save.
func (s *FileTaskStore) Backup(destinationPath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for backup: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	input, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read source file %s for backup: %w", s.filePath, err)
	}
	if err := os.WriteFile(destinationPath, input, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file to %s: %w", destinationPath, err)
	}
	return nil
}

// Restore replaces the persisted document with the file at sourcePath. The
// stale checksum sidecar is removed so the restored data loads cleanly.
func (s *FileTaskStore) Restore(sourcePath string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock for restore: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	sourceData, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source backup file %s: %w", sourcePath, err)
	}

	tempFilePath := s.filePath + ".tmp_restore"
	defer func() { _ = os.Remove(tempFilePath) }()

	if err := os.WriteFile(tempFilePath, sourceData, 0o644); err != nil {
		return fmt.Errorf("failed to write restored data to temporary file %s: %w", tempFilePath, err)
	}
	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace %s with restored data from %s: %w", s.filePath, sourcePath, err)
	}
	_ = os.Remove(s.filePath + checksumSuffix)
	return nil
}

// Close releases the file lock. flock.Unlock is idempotent, so Close is
// safe to call even when no lock is held.
func (s *FileTaskStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}

func emptyList() models.TaskList {
	return models.TaskList{SchemaVersion: models.CurrentSchemaVersion, Tasks: []models.Task{}}
}

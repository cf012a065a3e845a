// Package datastore is a JSON-file-backed key-value store organized into
// named tables. Data lives in memory and is flushed to disk atomically on
// an interval and on Close.
package datastore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds configuration options for the DataStore.
type Config struct {
	FilePath         string
	AutoSaveInterval time.Duration
	BackupCount      int // number of backup files to keep
	Logger           *log.Logger
}

// DefaultConfig returns a default configuration.
func DefaultConfig(filePath string) *Config {
	return &Config{
		FilePath:         filePath,
		AutoSaveInterval: 10 * time.Second,
		BackupCount:      3,
		Logger:           log.New(os.Stderr, "[datastore] ", log.LstdFlags),
	}
}

type DataStore struct {
	tables       map[string]map[string]any
	file         string
	mu           sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	config       *Config
	lastChecksum string
	closed       bool
	closeMu      sync.RWMutex
}

// New creates a new DataStore with default configuration.
func New(filePath string) (*DataStore, error) {
	return NewWithConfig(DefaultConfig(filePath))
}

// NewWithConfig creates a new DataStore with custom configuration.
func NewWithConfig(config *Config) (*DataStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.FilePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	if config.Logger == nil {
		config.Logger = log.New(os.Stderr, "[datastore] ", log.LstdFlags)
	}

	dir := filepath.Dir(config.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	store := &DataStore{
		tables: make(map[string]map[string]any),
		file:   config.FilePath,
		ctx:    ctx,
		cancel: cancel,
		config: config,
	}

	if _, err := os.Stat(config.FilePath); os.IsNotExist(err) {
		if err := store.writeFileAtomic([]byte("{}")); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to create empty JSON file: %v", err)
		}
	} else if err == nil {
		if err := store.loadFromFile(); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to load data from file: %v", err)
		}
	} else {
		cancel()
		return nil, fmt.Errorf("failed to check file existence: %v", err)
	}

	if config.AutoSaveInterval > 0 {
		store.wg.Add(1)
		go store.autoSave()
	}

	return store, nil
}

// Set stores a value under (table, key).
func (ds *DataStore) Set(table, key string, value any) {
	if ds.isClosed() {
		return
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()

	bucket, ok := ds.tables[table]
	if !ok {
		bucket = make(map[string]any)
		ds.tables[table] = bucket
	}
	bucket[key] = value
}

// Get retrieves a value by (table, key).
func (ds *DataStore) Get(table, key string) (any, bool) {
	if ds.isClosed() {
		return nil, false
	}

	ds.mu.RLock()
	defer ds.mu.RUnlock()
	value, exists := ds.tables[table][key]
	return value, exists
}

// Delete removes a key from a table.
func (ds *DataStore) Delete(table, key string) {
	if ds.isClosed() {
		return
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.tables[table], key)
}

// Keys returns all keys in a table.
func (ds *DataStore) Keys(table string) []string {
	if ds.isClosed() {
		return nil
	}

	ds.mu.RLock()
	defer ds.mu.RUnlock()

	keys := make([]string, 0, len(ds.tables[table]))
	for k := range ds.tables[table] {
		keys = append(keys, k)
	}
	return keys
}

// All returns a copy of every (key, value) pair in a table.
func (ds *DataStore) All(table string) map[string]any {
	if ds.isClosed() {
		return nil
	}

	ds.mu.RLock()
	defer ds.mu.RUnlock()

	out := make(map[string]any, len(ds.tables[table]))
	for k, v := range ds.tables[table] {
		out[k] = v
	}
	return out
}

// SaveToFile forces an immediate save to disk.
func (ds *DataStore) SaveToFile() error {
	if ds.isClosed() {
		return fmt.Errorf("datastore is closed")
	}
	return ds.saveToFile()
}

// Close stops the autosave routine and performs a final save.
func (ds *DataStore) Close() error {
	ds.closeMu.Lock()
	if ds.closed {
		ds.closeMu.Unlock()
		return nil
	}
	ds.closed = true
	ds.closeMu.Unlock()

	ds.cancel()
	ds.wg.Wait()

	return ds.saveToFile()
}

func (ds *DataStore) isClosed() bool {
	ds.closeMu.RLock()
	defer ds.closeMu.RUnlock()
	return ds.closed
}

// saveToFile saves data to disk with atomic write and integrity checking.
func (ds *DataStore) saveToFile() error {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	data, err := json.MarshalIndent(ds.tables, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %v", err)
	}

	checksum := ds.calculateChecksum(data)

	// Skip save if data hasn't changed
	if checksum == ds.lastChecksum {
		return nil
	}

	if ds.config.BackupCount > 0 {
		if err := ds.createBackup(); err != nil {
			ds.config.Logger.Printf("Failed to create backup: %v", err)
		}
	}

	if err := ds.writeFileAtomic(data); err != nil {
		return err
	}

	if err := ds.verifyFile(data); err != nil {
		return fmt.Errorf("file verification failed: %v", err)
	}

	ds.lastChecksum = checksum
	return nil
}

// loadFromFile loads data from disk with validation.
func (ds *DataStore) loadFromFile() error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	data, err := os.ReadFile(ds.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %v", err)
	}

	var temp map[string]map[string]any
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	if temp == nil {
		temp = make(map[string]map[string]any)
	}

	ds.tables = temp
	ds.lastChecksum = ds.calculateChecksum(data)

	return nil
}

// writeFileAtomic performs atomic file write using temporary file and rename.
func (ds *DataStore) writeFileAtomic(data []byte) error {
	tmpFile := ds.file + ".tmp"

	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write to temp file: %v", err)
	}

	file, err := os.OpenFile(tmpFile, os.O_RDWR, 0644)
	if err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to open temp file for sync: %v", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("failed to sync temp file: %v", err)
	}
	file.Close()

	if err := os.Rename(tmpFile, ds.file); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %v", err)
	}

	return nil
}

// verifyFile verifies that the written file matches expected data.
func (ds *DataStore) verifyFile(expectedData []byte) error {
	actualData, err := os.ReadFile(ds.file)
	if err != nil {
		return fmt.Errorf("failed to read file for verification: %v", err)
	}

	if ds.calculateChecksum(actualData) != ds.calculateChecksum(expectedData) {
		return fmt.Errorf("file checksum mismatch")
	}

	return nil
}

// createBackup creates a timestamped backup of the current file.
func (ds *DataStore) createBackup() error {
	if _, err := os.Stat(ds.file); os.IsNotExist(err) {
		return nil // no file to backup
	}

	timestamp := time.Now().Format("20060102_150405")
	backupFile := fmt.Sprintf("%s.backup.%s", ds.file, timestamp)

	src, err := os.Open(ds.file)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(backupFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	ds.cleanupOldBackups()

	return nil
}

// cleanupOldBackups removes old backup files beyond the configured limit.
func (ds *DataStore) cleanupOldBackups() {
	pattern := ds.file + ".backup.*"
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	if len(matches) <= ds.config.BackupCount {
		return
	}

	type fileInfo struct {
		path    string
		modTime time.Time
	}

	var files []fileInfo
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil {
			files = append(files, fileInfo{match, info.ModTime()})
		}
	}

	// Oldest first
	for i := 0; i < len(files)-1; i++ {
		for j := i + 1; j < len(files); j++ {
			if files[i].modTime.After(files[j].modTime) {
				files[i], files[j] = files[j], files[i]
			}
		}
	}

	toRemove := len(files) - ds.config.BackupCount
	for i := 0; i < toRemove; i++ {
		os.Remove(files[i].path)
	}
}

// autoSave runs the periodic save routine.
func (ds *DataStore) autoSave() {
	defer ds.wg.Done()

	ticker := time.NewTicker(ds.config.AutoSaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ds.ctx.Done():
			return
		case <-ticker.C:
			if err := ds.saveToFile(); err != nil {
				ds.config.Logger.Printf("Auto-save error: %v", err)
			}
		}
	}
}

// calculateChecksum computes SHA-256 checksum of data.
func (ds *DataStore) calculateChecksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

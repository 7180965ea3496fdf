package store

import (
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"bguard/internal/providers"
	"bguard/internal/store/interfaces"
	"bguard/internal/structures"
)

// FileStore is a write-through KV store persisted as a zstd-compressed JSON
// snapshot. Every mutation rewrites the snapshot atomically (tmp + fsync +
// rename), so the on-disk state always matches the last completed write.
//
// A missing or unreadable snapshot degrades to an empty store instead of
// failing: a wiped or corrupted file is exactly the situation the guard
// exists to detect, so startup must survive it.
type FileStore struct {
	mu         sync.RWMutex
	path       string
	data       map[string]string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (Store, error) {
	fs := &FileStore{
		path:       conf.Persistence.FilePath,
		data:       make(map[string]string),
		compressor: compressor,
		logger:     logger,
	}
	fs.load()
	return fs, nil
}

func (f *FileStore) load() {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warnf(providers.TypeApp, "Failed to read store file %s: %s", f.path, err)
		}
		return
	}

	decompressed, err := f.compressor.Decompress(raw)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Failed to decompress store file %s, starting empty: %s", f.path, err)
		return
	}

	var data map[string]string
	if err := json.Unmarshal(decompressed, &data); err != nil {
		f.logger.Warnf(providers.TypeApp, "Failed to parse store file %s, starting empty: %s", f.path, err)
		return
	}
	if data == nil {
		// A snapshot holding JSON null unmarshals without error.
		return
	}
	f.data = data
}

// persist writes the current snapshot. Must be called under f.mu.Lock().
func (f *FileStore) persist() error {
	jsonData, err := json.Marshal(f.data)
	if err != nil {
		return err
	}
	compressed, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(compressed); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	val, ok := f.data[key]
	return val, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.persist()
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.persist()
}

func (f *FileStore) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.data[key]
	return ok
}

func (f *FileStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.data)
}

func (f *FileStore) Close() error {
	f.compressor.Close()
	return nil
}

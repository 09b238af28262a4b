package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"specc/internal/diag"
	"specc/internal/project"
)

// Bump when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результат компиляции spec-файла по хешу его содержимого
// и настроек генерации. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is what is stored per spec file.
type DiskPayload struct {
	Schema    uint16
	Component string
	Code      []byte
	Diags     []diag.Diagnostic
}

// OpenDiskCache opens (creating if needed) the cache under the user cache
// directory, or under dir when it is not empty.
func OpenDiskCache(app, dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir is the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.String()
	// раскладываем по подкаталогам, как git objects
	return filepath.Join(c.dir, "specs", hexKey[:2], hexKey[2:]+".mp")
}

// Put writes payload atomically. A nil cache ignores the call.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads the payload for key. Entries from another schema version are
// reported as misses.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем, чтобы параллельный Put не писал в удаляемый каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func toPayload(res *FileResult) *DiskPayload {
	p := &DiskPayload{Schema: diskCacheSchemaVersion, Code: res.Code, Diags: res.Diags}
	if res.Spec != nil {
		p.Component = res.Spec.ComponentName()
	}
	return p
}

// fromCache turns a hit back into a result. Read errors count as misses.
func fromCache(c *DiskCache, key project.Digest, path string, opts Options) (FileResult, bool) {
	var p DiskPayload
	ok, err := c.Get(key, &p)
	if err != nil || !ok {
		return FileResult{}, false
	}
	res := FileResult{Path: path, Code: p.Code, Diags: p.Diags, Cached: true}
	if p.Component != "" {
		res.Output = opts.OutputPath(path, p.Component)
	}
	return res, true
}

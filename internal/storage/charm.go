// ABOUTME: Charm KV backend - cloud-synced storage keyed to the user's SSH identity.
// ABOUTME: Wraps charm/kv with thread-safe access and sync-on-write.
package storage

import (
	"errors"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

const (
	charmDBName = "coach"
	charmHost   = "charm.2389.dev"
)

// CharmKV is the Charm Cloud backed KV store. Writes sync to the cloud
// automatically; other devices linked to the same Charm account see them.
type CharmKV struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenCharm opens the Charm KV database, pulling remote state on startup
// when the local copy is writable.
func OpenCharm() (*CharmKV, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, err
	}

	c := &CharmKV{kv: db, autoSync: true}
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return c, nil
}

func (c *CharmKV) Get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := c.kv.Get([]byte(key))
	if err != nil {
		return nil, ErrNotFound
	}
	return data, nil
}

func (c *CharmKV) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return errors.New("cannot write: database is locked by another process (MCP server?)")
	}
	if err := c.kv.Set([]byte(key), value); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

func (c *CharmKV) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return errors.New("cannot write: database is locked by another process (MCP server?)")
	}
	if err := c.kv.Delete([]byte(key)); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

func (c *CharmKV) Keys() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, string(k))
	}
	return keys, nil
}

// Sync synchronizes local state with Charm Cloud.
func (c *CharmKV) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *CharmKV) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (c *CharmKV) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

func (c *CharmKV) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

func (c *CharmKV) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		_ = c.kv.Sync()
	}
}

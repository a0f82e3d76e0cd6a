// Package localstore persists collections as JSON files on local disk, one
// slot per entity, behind the same repository surface as the SQL-backed
// generic repository. Every mutation rewrites the whole slot; concurrent
// writers are serialized per slot and the last write wins.
package localstore

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"armada/config"
	"armada/shared/timezone"
)

const slotFileExt = ".json"

const idSuffixLen = 9

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Provider owns the storage directory and the per-slot write locks.
type Provider struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	dir := cfg.Storage.Local.Dir

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local storage directory: %w", err)
	}

	return &Provider{
		dir:   dir,
		locks: map[string]*sync.Mutex{},
	}, nil
}

func (p *Provider) path(slot string) string {
	return filepath.Join(p.dir, slot+slotFileExt)
}

func (p *Provider) lock(slot string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.locks[slot]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[slot] = lock
	}

	return lock
}

// NewID builds a record identifier from the current timestamp in milliseconds
// plus a random base36 suffix, unique enough for single-writer slots.
func NewID() string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	return strconv.FormatInt(timezone.Now().UnixMilli(), 10) + string(suffix)
}

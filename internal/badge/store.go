package badge

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/packforge/awardgen/internal/util"
)

// Store is the byte cache behind the resolver, keyed by "sku_<SKU>".
// The backing medium is the collaborator's choice; DirStore is the
// filesystem default.
type Store interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte) error
}

// DirStore keeps one PNG per key in a single directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".png")
}

func (s *DirStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// Put writes to a temp name and renames into place, so a reader can never
// observe a partially written entry.
func (s *DirStore) Put(key string, data []byte) error {
	tmp := s.path(key) + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

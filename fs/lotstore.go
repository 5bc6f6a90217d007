package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/artlot"
)

// Ensure LotStore implements artlot.LotWriter at compile time.
var _ artlot.LotWriter = (*LotStore)(nil)

// LotStore writes lots with atomic update semantics.
// Lots are saved to a temporary directory, then moved atomically on Commit.
type LotStore struct {
	baseDir string
	name    string
}

// NewLotStore creates a new LotStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewLotStore(baseDir, name string) *LotStore {
	return &LotStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *LotStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *LotStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateLot writes a lot into the temporary directory.
func (s *LotStore) CreateLot(ctx context.Context, lot *artlot.Lot) error {
	return NewWriter(s.tempDir()).CreateLot(ctx, lot)
}

// Commit replaces the output directory with the saved lots.
func (s *LotStore) Commit() error {
	// A batch that saved nothing still produces an empty directory
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved lots.
func (s *LotStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

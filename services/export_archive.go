package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ErrArchiveNotFound is returned for names that are not in the archive.
var ErrArchiveNotFound = errors.New("archived export not found")

// ExportArchive keeps a copy of every generated export on disk so it can be
// downloaded again until the retention purge removes it.
type ExportArchive struct {
	dir       string
	retention time.Duration
	now       func() time.Time
	purging   int32
}

// NewExportArchive creates dir if needed.
func NewExportArchive(dir string, retention time.Duration) (*ExportArchive, error) {
	if dir == "" {
		return nil, errors.New("export archive directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &ExportArchive{dir: dir, retention: retention, now: time.Now}, nil
}

func (a *ExportArchive) Dir() string { return a.dir }

// Save writes data under the project's directory with a unique name derived
// from filename and returns that name.
func (a *ExportArchive) Save(projectID, filename string, data []byte) (string, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return "", fmt.Errorf("invalid project id %q: %w", projectID, err)
	}
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid export filename %q", filename)
	}
	name := strings.SplitN(uuid.NewString(), "-", 2)[0] + "_" + base

	dir := filepath.Join(a.dir, projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create project export dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create archive file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write archive file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close archive file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store archive file: %w", err)
	}
	return name, nil
}

// Path resolves a project's archived name to its file path. Another
// project's files are not found. Names containing path separators or
// starting with a dot are rejected.
func (a *ExportArchive) Path(projectID, name string) (string, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return "", ErrArchiveNotFound
	}
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", ErrArchiveNotFound
	}
	p := filepath.Join(a.dir, projectID, name)
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrArchiveNotFound
	}
	return p, nil
}

// DownloadName strips the uniqueness prefix Save added.
func DownloadName(name string) string {
	if i := strings.IndexByte(name, '_'); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return name
}

// Purge deletes archived files whose modification time is older than the
// retention window and returns how many were removed. Leftover temp files
// are purged by the same rule, and emptied project directories go too.
func (a *ExportArchive) Purge(ctx context.Context) (int, error) {
	cutoff := a.now().Add(-a.retention)
	removed := 0
	var errs []error
	var dirs []string
	err := filepath.WalkDir(a.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != a.dir {
				dirs = append(dirs, path)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
			return nil
		}
		removed++
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("walk export dir: %w", err)
	}
	// deepest first; non-empty directories fail to remove and stay
	for i := len(dirs) - 1; i >= 0; i-- {
		_ = os.Remove(dirs[i])
	}
	return removed, errors.Join(errs...)
}

// RunPurge is the cron entry point. Overlapping runs are skipped.
func (a *ExportArchive) RunPurge(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&a.purging, 0, 1) {
		log.Println("[cron] previous export purge still running, skipping this run")
		return nil
	}
	defer atomic.StoreInt32(&a.purging, 0)

	n, err := a.Purge(ctx)
	log.Printf("[cron] export purge removed %d file(s) from %s", n, a.dir)
	return err
}

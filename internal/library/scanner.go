package library

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/vrsandeep/mango-reader/internal/models"
	"golang.org/x/sync/errgroup"
)

// ErrPermissionDenied marks a scan that hit a directory it may not read.
var ErrPermissionDenied = errors.New("permission denied")

// scanWorkers bounds how many child directories are inspected at once.
const scanWorkers = 8

// dirStats summarises the direct children of one directory.
type dirStats struct {
	hasImages  bool
	hasSubdirs bool
	imageCount int
}

func (s dirStats) entry(name, rel string) models.Entry {
	e := models.Entry{
		Name:       name,
		Path:       rel,
		Type:       models.KindManga,
		HasImages:  s.hasImages,
		HasSubdirs: s.hasSubdirs,
	}
	if s.hasImages {
		e.Type = models.KindChapter
		e.ImageCount = s.imageCount
	}
	return e
}

// Scan lists the sub-directories of absDir as entries whose paths are
// relative to relDir. Loose files are skipped. The result is ordered with
// SortEntries. Only a permission failure on absDir itself is reported as
// ErrPermissionDenied. A child that may not be read is still listed, as an
// empty collection.
func Scan(absDir, relDir string) ([]models.Entry, error) {
	children, err := readDir(absDir)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, d := range children {
		if isDir, _ := kindOf(absDir, d); isDir {
			dirs = append(dirs, d.Name())
		}
	}

	entries := make([]models.Entry, len(dirs))
	var g errgroup.Group
	g.SetLimit(scanWorkers)
	for i, name := range dirs {
		g.Go(func() error {
			stats, err := inspect(Resolve(absDir, name))
			if errors.Is(err, ErrPermissionDenied) {
				log.Printf("Listing unreadable directory %s as empty: %v", name, err)
				stats = dirStats{}
			} else if err != nil {
				return err
			}
			entries[i] = stats.entry(name, JoinRelative(relDir, name))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortEntries(entries)
	return entries, nil
}

// inspect counts the image files and sub-directories directly inside dir.
func inspect(dir string) (dirStats, error) {
	var stats dirStats
	children, err := readDir(dir)
	if err != nil {
		return stats, err
	}
	for _, d := range children {
		isDir, isFile := kindOf(dir, d)
		if isDir {
			stats.hasSubdirs = true
		}
		if isFile && IsImage(d.Name()) {
			stats.imageCount++
		}
	}
	stats.hasImages = stats.imageCount > 0
	return stats, nil
}

// readDir returns the children of dir in the order the filesystem reports
// them, unlike os.ReadDir which sorts by name.
func readDir(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, classify(dir, err)
	}
	defer f.Close()

	children, err := f.ReadDir(-1)
	if err != nil {
		return nil, classify(dir, err)
	}
	return children, nil
}

func classify(dir string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, dir)
	}
	return fmt.Errorf("failed to list %s: %w", dir, err)
}

// kindOf reports whether a child is a directory or a regular file,
// following symlinks. A child that cannot be stat'ed is neither.
func kindOf(dir string, d os.DirEntry) (isDir, isFile bool) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir(), d.Type().IsRegular()
	}
	info, err := os.Stat(Resolve(dir, d.Name()))
	if err != nil {
		return false, false
	}
	return info.IsDir(), info.Mode().IsRegular()
}

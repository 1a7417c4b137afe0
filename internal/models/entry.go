// This file defines the data structures returned when browsing the
// on-disk library: directory entries, chapter image listings and
// chapter neighbours.

package models

// EntryKind classifies a directory found while browsing.
type EntryKind string

const (
	// KindManga is a collection: a directory with no direct image files.
	KindManga EntryKind = "manga"
	// KindChapter is a directory with at least one direct image file.
	KindChapter EntryKind = "chapter"
)

// Entry is one immediate child directory of a browsed path.
type Entry struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"` // relative to the active root, "/" separated
	Type       EntryKind `json:"type"`
	HasImages  bool      `json:"has_images"`
	HasSubdirs bool      `json:"has_subdirs"`
	ImageCount int       `json:"image_count"`
}

// Adjacency holds the chapters before and after a chapter within its parent.
// A nil pointer serialises as JSON null.
type Adjacency struct {
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// ImageListing is the payload returned when a chapter is opened.
type ImageListing struct {
	MangaPath        string    `json:"manga_path"`
	Images           []string  `json:"images"`
	AdjacentChapters Adjacency `json:"adjacent_chapters"`
}

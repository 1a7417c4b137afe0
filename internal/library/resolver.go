package library

import (
	"errors"
	"log"
	"os"

	"github.com/vrsandeep/mango-reader/internal/models"
)

// RootSource reports the directory that relative paths resolve against.
// It is read once per operation, so a root change never splits a request.
type RootSource interface {
	ActiveRoot() string
}

// ListChildren returns the sub-directories of rel under root. A path that
// does not exist, or that may not be read, yields an empty list.
func ListChildren(root, rel string) ([]models.Entry, error) {
	abs := Resolve(root, rel)
	if !exists(abs) {
		return []models.Entry{}, nil
	}

	entries, err := Scan(abs, rel)
	if errors.Is(err, ErrPermissionDenied) {
		log.Printf("Skipping unreadable directory %s: %v", abs, err)
		return []models.Entry{}, nil
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListImages returns the page filenames of the chapter at rel, ordered with
// SortFilenames. A chapter that does not exist yields an empty list.
func ListImages(root, rel string) ([]string, error) {
	abs := Resolve(root, rel)
	if !exists(abs) {
		return []string{}, nil
	}

	children, err := readDir(abs)
	if err != nil {
		return nil, err
	}
	images := []string{}
	for _, d := range children {
		if _, isFile := kindOf(abs, d); isFile && IsImage(d.Name()) {
			images = append(images, d.Name())
		}
	}
	SortFilenames(images)
	return images, nil
}

// OpenChapter bundles the page list of a chapter with its neighbours.
func OpenChapter(root, rel string) (*models.ImageListing, error) {
	images, err := ListImages(root, rel)
	if err != nil {
		return nil, err
	}
	return &models.ImageListing{
		MangaPath:        rel,
		Images:           images,
		AdjacentChapters: Adjacent(root, rel),
	}, nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

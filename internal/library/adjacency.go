package library

import (
	"slices"
	"strings"

	"github.com/vrsandeep/mango-reader/internal/models"
)

// Adjacent finds the chapters before and after chapterRel among the
// chapters of its parent directory. A chapter directly under the root has
// no neighbours, and any failure to read the parent yields none either.
func Adjacent(root, chapterRel string) models.Adjacency {
	segments := SplitRelative(chapterRel)
	if len(segments) <= 1 {
		return models.Adjacency{}
	}
	parentRel := strings.Join(segments[:len(segments)-1], pathSep)
	current := segments[len(segments)-1]

	siblings, err := chapterNames(Resolve(root, parentRel))
	if err != nil {
		return models.Adjacency{}
	}
	SortSiblingNames(siblings)

	idx := slices.Index(siblings, current)
	if idx < 0 {
		return models.Adjacency{}
	}

	var adj models.Adjacency
	if idx > 0 {
		adj.Previous = qualify(parentRel, siblings[idx-1])
	}
	if idx < len(siblings)-1 {
		adj.Next = qualify(parentRel, siblings[idx+1])
	}
	return adj
}

// chapterNames lists the sub-directories of dir holding at least one image.
func chapterNames(dir string) ([]string, error) {
	children, err := readDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, d := range children {
		if isDir, _ := kindOf(dir, d); !isDir {
			continue
		}
		stats, err := inspect(Resolve(dir, d.Name()))
		if err != nil {
			return nil, err
		}
		if stats.hasImages {
			names = append(names, d.Name())
		}
	}
	return names, nil
}

// qualify prefixes a sibling name with its parent. Siblings of a chapter
// whose parent path is empty are returned bare.
func qualify(parentRel, name string) *string {
	if parentRel != "" {
		name = parentRel + pathSep + name
	}
	return &name
}

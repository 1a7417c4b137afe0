package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/mango-reader/internal/models"
)

func TestScan(t *testing.T) {
	root := buildLibrary(t,
		"Series A/ch1/01.jpg",
		"Series A/ch1/02.png",
		"Series A/ch1/notes.txt",
		"Series B/",
		"Mixed/001.jpg",
		"Mixed/extras/",
		"loose.jpg",
	)

	entries, err := Scan(root, "")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, models.Entry{
		Name: "Series A", Path: "Series A", Type: models.KindManga,
		HasImages: false, HasSubdirs: true, ImageCount: 0,
	}, entries[0])
	assert.Equal(t, models.Entry{
		Name: "Series B", Path: "Series B", Type: models.KindManga,
	}, entries[1])
	assert.Equal(t, models.Entry{
		Name: "Mixed", Path: "Mixed", Type: models.KindChapter,
		HasImages: true, HasSubdirs: true, ImageCount: 1,
	}, entries[2])
}

func TestScanNestedPaths(t *testing.T) {
	root := buildLibrary(t,
		"Series A/ch2/01.jpg",
		"Series A/ch1/01.jpg",
		"Series A/ch1/02.jpg",
	)

	entries, err := Scan(filepath.Join(root, "Series A"), "Series A")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Series A/ch1", entries[0].Path)
	assert.Equal(t, 2, entries[0].ImageCount)
	assert.Equal(t, "Series A/ch2", entries[1].Path)
}

func TestScanIgnoresImageNamedDirectories(t *testing.T) {
	root := buildLibrary(t, "Series/fake.jpg/", "Series/real.jpg")

	entries, err := Scan(root, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.KindChapter, entries[0].Type)
	assert.Equal(t, 1, entries[0].ImageCount)
	assert.True(t, entries[0].HasSubdirs)
}

func TestScanFollowsSymlinks(t *testing.T) {
	root := buildLibrary(t, "real/01.jpg")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	entries, err := Scan(root, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "linked", entries[0].Name)
	assert.Equal(t, models.KindChapter, entries[0].Type)
}

func TestScanUnreadableChild(t *testing.T) {
	skipIfRoot(t)
	root := buildLibrary(t, "Series/locked/01.jpg", "Series/open/01.jpg", "Series/other/01.jpg")
	locked := filepath.Join(root, "Series", "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	entries, err := Scan(filepath.Join(root, "Series"), "Series")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, models.Entry{Name: "locked", Path: "Series/locked", Type: models.KindManga}, entries[0])
	assert.Equal(t, "Series/open", entries[1].Path)
	assert.Equal(t, models.KindChapter, entries[1].Type)
	assert.Equal(t, "Series/other", entries[2].Path)
	assert.Equal(t, 1, entries[2].ImageCount)

	listed, err := ListChildren(root, "Series")
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestScanPermissionDenied(t *testing.T) {
	skipIfRoot(t)
	root := buildLibrary(t, "Series/ch1/01.jpg")
	series := filepath.Join(root, "Series")
	require.NoError(t, os.Chmod(series, 0))
	t.Cleanup(func() { os.Chmod(series, 0755) })

	_, err := Scan(series, "Series")
	assert.True(t, errors.Is(err, ErrPermissionDenied), "expected ErrPermissionDenied, got %v", err)
}

func TestListChildren(t *testing.T) {
	root := buildLibrary(t, "Series/ch1/01.jpg", "Series/ch2/01.jpg")

	t.Run("Root", func(t *testing.T) {
		entries, err := ListChildren(root, "")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Series", entries[0].Path)
	})

	t.Run("Nested", func(t *testing.T) {
		entries, err := ListChildren(root, "Series")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Series/ch1", entries[0].Path)
		assert.Equal(t, "Series/ch2", entries[1].Path)
	})

	t.Run("Missing path is empty", func(t *testing.T) {
		entries, err := ListChildren(root, "Nope/Nothing")
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("Missing root is empty", func(t *testing.T) {
		entries, err := ListChildren(filepath.Join(root, "gone"), "")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("File path fails", func(t *testing.T) {
		_, err := ListChildren(root, "Series/ch1/01.jpg")
		assert.Error(t, err)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := ListChildren(root, "Series")
		require.NoError(t, err)
		second, err := ListChildren(root, "Series")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestListChildrenPermissionDenied(t *testing.T) {
	skipIfRoot(t)
	root := buildLibrary(t, "Locked/ch1/01.jpg")
	locked := filepath.Join(root, "Locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	entries, err := ListChildren(root, "Locked")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListImages(t *testing.T) {
	root := buildLibrary(t,
		"Series/ch1/10.jpg",
		"Series/ch1/2.PNG",
		"Series/ch1/1.webp",
		"Series/ch1/info.txt",
		"Series/ch1/sub.jpg/",
	)

	images, err := ListImages(root, "Series/ch1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.webp", "2.PNG", "10.jpg"}, images)

	again, err := ListImages(root, "Series/ch1")
	require.NoError(t, err)
	assert.Equal(t, images, again)

	missing, err := ListImages(root, "Series/ch9")
	require.NoError(t, err)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestOpenChapter(t *testing.T) {
	root := buildLibrary(t, "Series/ch1/1.jpg", "Series/ch2/1.jpg", "Series/ch2/2.jpg")

	listing, err := OpenChapter(root, "Series/ch2")
	require.NoError(t, err)
	assert.Equal(t, "Series/ch2", listing.MangaPath)
	assert.Equal(t, []string{"1.jpg", "2.jpg"}, listing.Images)
	require.NotNil(t, listing.AdjacentChapters.Previous)
	assert.Equal(t, "Series/ch1", *listing.AdjacentChapters.Previous)
	assert.Nil(t, listing.AdjacentChapters.Next)
}

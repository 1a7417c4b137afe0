// To handle all reading-history database interactions, keeping SQL
// queries separate from the HTTP handlers.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vrsandeep/mango-reader/internal/models"
)

// MaxHistoryRecords is how many records the history keeps.
const MaxHistoryRecords = 50

// ErrHistoryNotFound is returned when a history position does not exist.
var ErrHistoryNotFound = errors.New("history record not found")

// HistoryStore reads and writes the reading history.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a new HistoryStore instance.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// ProgressPercent is the share of a chapter read once the page at
// imageIndex (0-based) is shown, rounded to one decimal.
func ProgressPercent(imageIndex, totalImages int) float64 {
	if totalImages <= 0 {
		return 0
	}
	p := float64(imageIndex+1) / float64(totalImages) * 100
	// FormatFloat rounds the exact binary value, ties to even.
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(p, 'f', 1, 64), 64)
	return rounded
}

// AddHistory records that a chapter was read up to imageIndex. Any older
// record for the same chapter is replaced, the new record becomes the most
// recent one and the history is trimmed to MaxHistoryRecords.
func (s *HistoryStore) AddHistory(mangaPath, chapterName string, imageIndex, totalImages int) (*models.HistoryRecord, error) {
	record := &models.HistoryRecord{
		MangaPath:       mangaPath,
		ChapterName:     chapterName,
		ImageIndex:      imageIndex,
		TotalImages:     totalImages,
		Timestamp:       time.Now(),
		ProgressPercent: ProgressPercent(imageIndex, totalImages),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reading_history WHERE manga_path = ? AND chapter_name = ?", mangaPath, chapterName); err != nil {
		return nil, fmt.Errorf("failed to remove previous record: %w", err)
	}

	res, err := tx.Exec(`
		INSERT INTO reading_history (manga_path, chapter_name, image_index, total_images, progress_percent, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.MangaPath, record.ChapterName, record.ImageIndex, record.TotalImages, record.ProgressPercent, record.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}
	if record.ID, err = res.LastInsertId(); err != nil {
		return nil, err
	}

	// AUTOINCREMENT ids only grow, so the newest records have the highest ids.
	_, err = tx.Exec(`
		DELETE FROM reading_history
		WHERE id NOT IN (SELECT id FROM reading_history ORDER BY id DESC LIMIT ?)`, MaxHistoryRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to trim history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

// ListHistory returns the history, most recent first.
func (s *HistoryStore) ListHistory() ([]*models.HistoryRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, manga_path, chapter_name, image_index, total_images, progress_percent, created_at
		FROM reading_history
		ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.HistoryRecord{}
	for rows.Next() {
		var r models.HistoryRecord
		if err := rows.Scan(&r.ID, &r.MangaPath, &r.ChapterName, &r.ImageIndex, &r.TotalImages, &r.ProgressPercent, &r.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}

// DeleteHistoryAt removes the record at position index of ListHistory.
func (s *HistoryStore) DeleteHistoryAt(index int) error {
	if index < 0 {
		return ErrHistoryNotFound
	}
	var id int64
	err := s.db.QueryRow("SELECT id FROM reading_history ORDER BY id DESC LIMIT 1 OFFSET ?", index).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrHistoryNotFound
	}
	if err != nil {
		return err
	}
	_, err = s.db.Exec("DELETE FROM reading_history WHERE id = ?", id)
	return err
}

// Ping checks the database connection.
func (s *HistoryStore) Ping() error {
	return s.db.Ping()
}

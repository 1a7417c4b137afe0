// This file defines the reading-history record shared by the store and
// the HTTP layer.

package models

import "time"

// HistoryRecord is one entry of the reading history.
type HistoryRecord struct {
	ID              int64     `json:"-"`
	MangaPath       string    `json:"manga_path"`
	ChapterName     string    `json:"chapter_name"`
	ImageIndex      int       `json:"image_index"`
	TotalImages     int       `json:"total_images"`
	Timestamp       time.Time `json:"timestamp"`
	ProgressPercent float64   `json:"progress_percent"`
}

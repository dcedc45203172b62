package storage

import "time"

// FileRecord is the stored metadata of one uploaded file.
// Records are written once at upload time and never updated.
type FileRecord struct {
	ID         int64     `json:"id" msgpack:"id"`
	Name       string    `json:"name" msgpack:"name"`         // Sanitized original filename
	Category   string    `json:"category" msgpack:"category"` // Label returned by the classifier
	Path       string    `json:"path" msgpack:"path"`         // Final location; the save path if organizing failed
	Size       int64     `json:"size" msgpack:"size"`         // Bytes on disk before the move
	UploadDate time.Time `json:"upload_date" msgpack:"upload_date"`
}

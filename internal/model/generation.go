package model

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"
)

// GenerationRecord describes one report file written to disk.
// Records are stored by the history database when recording is enabled.
type GenerationRecord struct {
	// ID is the database row ID. Zero until the record is saved.
	ID int64 `json:"id"`

	// Path is the output path as given on the command line.
	Path string `json:"path"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Pages is the number of pages in the written document.
	Pages int `json:"pages"`

	// Digest is the hex-encoded SHA3-256 of the file contents.
	// Because report content is fixed, every record for the same layout
	// carries the same digest.
	Digest string `json:"digest"`

	// CreatedAt is when the file was written.
	CreatedAt time.Time `json:"created_at"`
}

// NewGenerationRecord creates a record for a report file with the given
// contents. CreatedAt is set to the current time.
func NewGenerationRecord(path string, data []byte, pages int) *GenerationRecord {
	return &GenerationRecord{
		Path:      path,
		Size:      int64(len(data)),
		Pages:     pages,
		Digest:    Digest(data),
		CreatedAt: time.Now(),
	}
}

// Digest returns the hex-encoded SHA3-256 of data.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ShortDigest returns the first 12 characters of the digest for display.
func (g *GenerationRecord) ShortDigest() string {
	if len(g.Digest) <= 12 {
		return g.Digest
	}
	return g.Digest[:12]
}

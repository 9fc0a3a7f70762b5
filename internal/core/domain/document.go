package domain

import "time"

// PlaceholderSimilarity is the fixed similarity score attached to
// offline retrieval hits. True embedding similarity is out of scope;
// callers must not treat this as a calibrated probability.
const PlaceholderSimilarity = 0.8

// IndexedDocument is a documentation entry owned by the offline
// document index. Documents are immutable after insertion; there is
// no update or delete operation.
type IndexedDocument struct {
	// ID is the monotonically increasing identifier assigned by the
	// index. Zero before insertion.
	ID int64 `json:"id"`

	// Title is the document title.
	Title string `json:"title"`

	// Content is the full document text.
	Content string `json:"content"`

	// Source labels where the document came from, e.g.
	// "Unity Documentation".
	Source string `json:"source"`

	// Category is the platform category of the document.
	Category Category `json:"category"`

	// URL is an optional link to the online original.
	URL string `json:"url,omitempty"`

	// CreatedAt is when the document was indexed.
	CreatedAt time.Time `json:"created_at"`

	// Similarity is the placeholder retrieval score, set on
	// retrieval only.
	Similarity float64 `json:"similarity,omitempty"`
}

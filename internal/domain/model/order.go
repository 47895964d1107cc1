package model

import "time"

// SnapshotFile is the serializable projection of a FileDescriptor:
// metadata only, no binary handle, no stored reference.
type SnapshotFile struct {
	Title       string `json:"title"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// SnapshotSection is the serializable projection of a Section.
type SnapshotSection struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Files       []SnapshotFile `json:"files"`
}

// OrderSnapshot is the attachment-free order payload submitted to the
// order endpoint and embedded in the persisted record.
type OrderSnapshot struct {
	Name          string            `json:"name"`
	Tagline       string            `json:"tagline"`
	LinkedIn      string            `json:"linkedin"`
	Email         string            `json:"email"`
	ContactNumber string            `json:"contactNumber"`
	About         string            `json:"about"`
	Skills        []string          `json:"skills"`
	Sections      []SnapshotSection `json:"sections"`
	ColorCodes    []string          `json:"colorCodes"`
	Hosting       HostingOption     `json:"hostingOption"`
	OtherComments string            `json:"otherComments"`
}

// OrderRecord is the persisted order. Immutable once created.
type OrderRecord struct {
	ID        string
	Snapshot  OrderSnapshot
	CreatedAt time.Time
}

// AttachmentUpload records one successfully stored file for a slot of
// an existing order. A slot may accumulate several rows when the same
// coordinate is re-uploaded; the newest row carries the current
// reference.
type AttachmentUpload struct {
	ID              int64
	OrderID         string
	SectionIndex    int
	FileIndex       int
	OriginalName    string
	StoredReference string
	CreatedAt       time.Time
}

package repository

import (
	"context"

	"github.com/polkiloo/folioorder/internal/domain/model"
)

// AttachmentRepository describes persistence of attachment-upload
// records. Record never overwrites: re-uploading a slot appends a new
// row, and readers take the newest row per (section, file) coordinate.
type AttachmentRepository interface {
	Record(ctx context.Context, upload model.AttachmentUpload) (*model.AttachmentUpload, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.AttachmentUpload, error)
}

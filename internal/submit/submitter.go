package submit

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
)

// OrderCreator persists the attachment-free snapshot and returns the
// assigned order identifier.
type OrderCreator interface {
	CreateOrder(ctx context.Context, snapshot model.OrderSnapshot) (string, error)
}

// AttachmentUploader persists one slot's file bytes and returns the
// stored reference.
type AttachmentUploader interface {
	UploadAttachment(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (string, error)
}

// Backend combines the two operations the submission needs.
type Backend interface {
	OrderCreator
	AttachmentUploader
}

// OrderCreateError reports a failed order creation; no uploads were
// attempted.
type OrderCreateError struct {
	Cause error
}

func (e OrderCreateError) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Cause)
}

func (e OrderCreateError) Unwrap() error { return e.Cause }

// AttachmentError reports the first failed upload. Earlier slots keep
// their reconciled references; the order record itself remains valid.
type AttachmentError struct {
	SectionIndex int
	FileIndex    int
	Cause        error
}

func (e AttachmentError) Error() string {
	return fmt.Sprintf("attachment upload failed at section %d file %d: %v", e.SectionIndex, e.FileIndex, e.Cause)
}

func (e AttachmentError) Unwrap() error { return e.Cause }

// Submitter drives the two-phase submission: create the order record
// once, then upload pending attachments one slot at a time.
type Submitter struct {
	backend Backend
	logger  *slog.Logger
}

// NewSubmitter constructs Submitter.
func NewSubmitter(backend Backend, logger *slog.Logger) *Submitter {
	return &Submitter{backend: backend, logger: logger}
}

// Submit sends the draft's snapshot, then walks sections in ascending
// order and files within each section in ascending order, uploading
// every slot that carries a pending attachment. Each successful upload
// is reconciled into the draft before the next one is issued. A failed
// upload stops the walk without rolling back the order record or any
// completed upload.
func (s *Submitter) Submit(ctx context.Context, draft *model.Draft) (string, error) {
	if !draft.CanSubmit() {
		return "", domainErrors.ErrMissingContact
	}

	orderID, err := s.backend.CreateOrder(ctx, draft.Snapshot())
	if err != nil {
		return "", OrderCreateError{Cause: err}
	}
	s.logger.Info("order created", slog.String("order_id", orderID))

	for sectionIdx := range draft.Sections {
		for fileIdx := range draft.Sections[sectionIdx].Files {
			file := &draft.Sections[sectionIdx].Files[fileIdx]
			if file.Attachment == nil {
				continue
			}

			ref, err := s.backend.UploadAttachment(ctx, orderID, sectionIdx, fileIdx, file.Attachment)
			if err != nil {
				s.logger.Error("attachment upload failed",
					slog.String("order_id", orderID),
					slog.Int("section", sectionIdx),
					slog.Int("file", fileIdx),
					slog.String("error", err.Error()),
				)
				return orderID, AttachmentError{SectionIndex: sectionIdx, FileIndex: fileIdx, Cause: err}
			}

			if err := draft.SetStoredReference(sectionIdx, fileIdx, ref); err != nil {
				return orderID, AttachmentError{SectionIndex: sectionIdx, FileIndex: fileIdx, Cause: err}
			}
		}
	}

	return orderID, nil
}

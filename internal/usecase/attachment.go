package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/folioorder/internal/blob"
	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
	"github.com/polkiloo/folioorder/internal/domain/repository"
)

// AttachmentUseCase stores uploaded files for existing orders and
// records the resulting references. All validation happens before any
// storage I/O is attempted.
type AttachmentUseCase struct {
	orders      repository.OrderRepository
	attachments repository.AttachmentRepository
	blobs       blob.Store
}

// NewAttachmentUseCase constructs AttachmentUseCase.
func NewAttachmentUseCase(orders repository.OrderRepository, attachments repository.AttachmentRepository, blobs blob.Store) *AttachmentUseCase {
	return &AttachmentUseCase{orders: orders, attachments: attachments, blobs: blobs}
}

// Put validates the upload coordinate, persists the bytes at the
// slot's deterministic storage address, and records the upload.
// Validation order: order id format, coordinate, file presence, order
// existence.
func (u *AttachmentUseCase) Put(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (*model.AttachmentUpload, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, domainErrors.ErrInvalidOrderID
	}
	if sectionIdx < 0 || fileIdx < 0 {
		return nil, domainErrors.ErrInvalidCoordinate
	}
	if content == nil {
		return nil, domainErrors.ErrMissingFile
	}

	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	key := StorageKey(orderID, sectionIdx, fileIdx, content.Name)
	ref, err := u.blobs.Put(ctx, key, content.MimeType, content.Data)
	if err != nil {
		return nil, err
	}

	return u.attachments.Record(ctx, model.AttachmentUpload{
		OrderID:         orderID,
		SectionIndex:    sectionIdx,
		FileIndex:       fileIdx,
		OriginalName:    content.Name,
		StoredReference: ref,
	})
}

// ListByOrder returns every upload recorded for an order, oldest
// first.
func (u *AttachmentUseCase) ListByOrder(ctx context.Context, orderID string) ([]model.AttachmentUpload, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, domainErrors.ErrInvalidOrderID
	}
	return u.attachments.ListByOrder(ctx, orderID)
}

package handlers

import (
	"context"

	"github.com/polkiloo/folioorder/internal/domain/model"
)

// OrderFacade encapsulates order record operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, snapshot model.OrderSnapshot) (*model.OrderRecord, error)
	Order(ctx context.Context, id string) (*model.OrderRecord, error)
}

// AttachmentFacade provides attachment upload operations.
type AttachmentFacade interface {
	UploadAttachment(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (*model.AttachmentUpload, error)
	Attachments(ctx context.Context, orderID string) ([]model.AttachmentUpload, error)
}

// PortfolioFacade aggregates the full set of operations used across handlers.
type PortfolioFacade interface {
	OrderFacade
	AttachmentFacade
}

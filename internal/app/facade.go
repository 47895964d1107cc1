package app

import (
	"context"

	"github.com/polkiloo/folioorder/internal/domain/model"
	"github.com/polkiloo/folioorder/internal/usecase"
)

// PortfolioFacade exposes the order and attachment pipeline as one
// application-level surface consumed by the HTTP handlers.
type PortfolioFacade struct {
	orders      *usecase.OrderUseCase
	attachments *usecase.AttachmentUseCase
}

func NewPortfolioFacade(orders *usecase.OrderUseCase, attachments *usecase.AttachmentUseCase) *PortfolioFacade {
	return &PortfolioFacade{orders: orders, attachments: attachments}
}

func (f *PortfolioFacade) SubmitOrder(ctx context.Context, snapshot model.OrderSnapshot) (*model.OrderRecord, error) {
	return f.orders.Submit(ctx, snapshot)
}

func (f *PortfolioFacade) Order(ctx context.Context, id string) (*model.OrderRecord, error) {
	return f.orders.Get(ctx, id)
}

func (f *PortfolioFacade) UploadAttachment(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (*model.AttachmentUpload, error) {
	return f.attachments.Put(ctx, orderID, sectionIdx, fileIdx, content)
}

func (f *PortfolioFacade) Attachments(ctx context.Context, orderID string) ([]model.AttachmentUpload, error) {
	return f.attachments.ListByOrder(ctx, orderID)
}

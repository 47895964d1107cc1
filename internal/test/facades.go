package test

import (
	"context"
	"time"

	"github.com/polkiloo/folioorder/internal/domain/model"
)

// StubOrderID is the identifier returned by facade stubs by default.
const StubOrderID = "8a2bb3a5-9a2f-4e63-bb5c-0f3dbd3bb7e2"

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn func(context.Context, model.OrderSnapshot) (*model.OrderRecord, error)
	OrderFn  func(context.Context, string) (*model.OrderRecord, error)
}

// SubmitOrder delegates to provided function or returns a default record.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, snapshot model.OrderSnapshot) (*model.OrderRecord, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, snapshot)
	}
	return &model.OrderRecord{ID: StubOrderID, Snapshot: snapshot, CreatedAt: time.Unix(0, 0)}, nil
}

// Order delegates to provided function or returns a default record.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.OrderRecord, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.OrderRecord{ID: id, CreatedAt: time.Unix(0, 0)}, nil
}

// AttachmentFacadeStub simulates attachment operations.
type AttachmentFacadeStub struct {
	UploadFn func(context.Context, string, int, int, *model.FileContent) (*model.AttachmentUpload, error)
	ListFn   func(context.Context, string) ([]model.AttachmentUpload, error)
}

// UploadAttachment delegates to the provided function or echoes a
// deterministic upload record.
func (s AttachmentFacadeStub) UploadAttachment(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (*model.AttachmentUpload, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, orderID, sectionIdx, fileIdx, content)
	}
	name := ""
	if content != nil {
		name = content.Name
	}
	return &model.AttachmentUpload{
		OrderID:         orderID,
		SectionIndex:    sectionIdx,
		FileIndex:       fileIdx,
		OriginalName:    name,
		StoredReference: "stub://" + orderID,
		CreatedAt:       time.Unix(0, 0),
	}, nil
}

// Attachments returns configured uploads.
func (s AttachmentFacadeStub) Attachments(ctx context.Context, orderID string) ([]model.AttachmentUpload, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, orderID)
	}
	return nil, nil
}

// PortfolioFacadeStub aggregates stubbed facade behaviour.
type PortfolioFacadeStub struct {
	OrderFacadeStub
	AttachmentFacadeStub
}

package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
)

// OrderRepositoryStub stores order records in-memory for tests.
type OrderRepositoryStub struct {
	Records map[string]*model.OrderRecord
	Err     error
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Records: make(map[string]*model.OrderRecord)}
}

// Create assigns a fresh UUID and stores the snapshot.
func (s *OrderRepositoryStub) Create(ctx context.Context, snapshot model.OrderSnapshot) (*model.OrderRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Records == nil {
		s.Records = make(map[string]*model.OrderRecord)
	}
	record := &model.OrderRecord{
		ID:        uuid.NewString(),
		Snapshot:  snapshot,
		CreatedAt: time.Now(),
	}
	s.Records[record.ID] = record
	return record, nil
}

// GetByID returns a stored record or ErrNotFound.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.OrderRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	record, ok := s.Records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return record, nil
}

// AttachmentRepositoryStub records uploads in-memory for tests.
type AttachmentRepositoryStub struct {
	Uploads []model.AttachmentUpload
	Err     error
	nextID  int64
}

// Record appends the upload and assigns a sequential id.
func (s *AttachmentRepositoryStub) Record(ctx context.Context, upload model.AttachmentUpload) (*model.AttachmentUpload, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.nextID++
	upload.ID = s.nextID
	upload.CreatedAt = time.Now()
	s.Uploads = append(s.Uploads, upload)
	return &upload, nil
}

// ListByOrder returns uploads recorded for the order, oldest first.
func (s *AttachmentRepositoryStub) ListByOrder(ctx context.Context, orderID string) ([]model.AttachmentUpload, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.AttachmentUpload
	for _, u := range s.Uploads {
		if u.OrderID == orderID {
			result = append(result, u)
		}
	}
	return result, nil
}

// BlobStoreStub records Put calls and returns deterministic references.
type BlobStoreStub struct {
	PutFn func(ctx context.Context, key, contentType string, data []byte) (string, error)
	Keys  []string
	Err   error
}

// Put delegates to PutFn when provided, otherwise records the key and
// returns "stub://<key>".
func (s *BlobStoreStub) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if s.PutFn != nil {
		return s.PutFn(ctx, key, contentType, data)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.Keys = append(s.Keys, key)
	return "stub://" + key, nil
}

package dto

import (
	"time"

	"github.com/polkiloo/folioorder/internal/domain/model"
)

// CreateOrderResponse carries the identifier assigned to a new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UploadResponse describes a stored attachment: the normalized object
// name at the storage address and the opaque reference to it.
type UploadResponse struct {
	StoredName string `json:"storedName"`
	Reference  string `json:"reference"`
}

// AttachmentResponse is one recorded upload of an order slot.
type AttachmentResponse struct {
	SectionIndex int       `json:"sectionIdx"`
	FileIndex    int       `json:"fileIdx"`
	OriginalName string    `json:"originalName"`
	Reference    string    `json:"reference"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// OrderResponse is a persisted order record with the uploads recorded
// for it.
type OrderResponse struct {
	ID          string               `json:"id"`
	CreatedAt   time.Time            `json:"createdAt"`
	Order       model.OrderSnapshot  `json:"order"`
	Attachments []AttachmentResponse `json:"attachments"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
	"github.com/polkiloo/folioorder/internal/server/http/dto"
	"github.com/polkiloo/folioorder/internal/usecase"
)

// OrderHandler manages order-record endpoints.
type OrderHandler struct {
	facade PortfolioFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade PortfolioFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/order.
func (h *OrderHandler) Submit(c *gin.Context) {
	var snapshot model.OrderSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order payload"})
		return
	}

	record, err := h.facade.SubmitOrder(c.Request.Context(), snapshot)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMissingContact) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Name and email are required."})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to save order"})
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{ID: record.ID})
}

// Get handles GET /api/order/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")

	record, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderID):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	uploads, err := h.facade.Attachments(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.OrderResponse{
		ID:          record.ID,
		CreatedAt:   record.CreatedAt,
		Order:       record.Snapshot,
		Attachments: make([]dto.AttachmentResponse, 0, len(uploads)),
	}
	for _, u := range uploads {
		response.Attachments = append(response.Attachments, dto.AttachmentResponse{
			SectionIndex: u.SectionIndex,
			FileIndex:    u.FileIndex,
			OriginalName: u.OriginalName,
			Reference:    u.StoredReference,
			UploadedAt:   u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

func storedName(u *model.AttachmentUpload) string {
	return usecase.StoredFileName(u.SectionIndex, u.FileIndex, u.OriginalName)
}

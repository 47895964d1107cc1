package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
	"github.com/polkiloo/folioorder/internal/server/http/dto"
)

// multipartMemoryLimit caps how much of a parsed form is kept in
// memory before spilling to disk.
const multipartMemoryLimit = 32 << 20

// UploadHandler accepts per-slot attachment uploads.
type UploadHandler struct {
	facade   AttachmentFacade
	maxBytes int64
}

// NewUploadHandler constructs UploadHandler with an upload size limit.
func NewUploadHandler(facade AttachmentFacade, maxBytes int64) *UploadHandler {
	return &UploadHandler{facade: facade, maxBytes: maxBytes}
}

// Upload handles POST /api/upload-file. The multipart form carries
// orderId, sectionIdx, fileIdx, and the file part.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	if err := c.Request.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "file too large"})
		} else {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid multipart payload"})
		}
		return
	}

	orderID := c.PostForm("orderId")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing orderId"})
		return
	}

	sectionIdx, err := strconv.Atoi(c.PostForm("sectionIdx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing sectionIdx/fileIdx"})
		return
	}
	fileIdx, err := strconv.Atoi(c.PostForm("fileIdx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing sectionIdx/fileIdx"})
		return
	}

	content, err := formFileContent(c)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing file"})
		} else {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid multipart payload"})
		}
		return
	}

	upload, err := h.facade.UploadAttachment(c.Request.Context(), orderID, sectionIdx, fileIdx, content)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderID):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		case errors.Is(err, domainErrors.ErrInvalidCoordinate):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid section/file index"})
		case errors.Is(err, domainErrors.ErrMissingFile):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing file"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Upload failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		StoredName: storedName(upload),
		Reference:  upload.StoredReference,
	})
}

func formFileContent(c *gin.Context) (*model.FileContent, error) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &model.FileContent{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

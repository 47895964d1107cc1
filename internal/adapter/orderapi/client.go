package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/polkiloo/folioorder/internal/domain/model"
)

// StatusError carries a non-success response from the order service.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("order service returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("order service returned %d", e.StatusCode)
}

// Client exposes the order service operations used during submission.
type Client interface {
	CreateOrder(ctx context.Context, snapshot model.OrderSnapshot) (string, error)
	UploadAttachment(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (string, error)
}

// HTTPClient implements Client via the HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// createResponse mirrors the order creation payload.
type createResponse struct {
	ID string `json:"id"`
}

// uploadResponse mirrors the attachment upload payload.
type uploadResponse struct {
	StoredName string `json:"storedName"`
	Reference  string `json:"reference"`
}

// errorResponse mirrors the error payload.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPClient creates an order service client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order service url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// CreateOrder posts the snapshot and returns the assigned order id.
func (c *HTTPClient) CreateOrder(ctx context.Context, snapshot model.OrderSnapshot) (string, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/order")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var data createResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.ID == "" {
		return "", fmt.Errorf("order service returned empty order id")
	}
	return data.ID, nil
}

// UploadAttachment sends one slot's file as a multipart form and
// returns the stored reference.
func (c *HTTPClient) UploadAttachment(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (string, error) {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	if err := writer.WriteField("orderId", orderID); err != nil {
		return "", err
	}
	if err := writer.WriteField("sectionIdx", strconv.Itoa(sectionIdx)); err != nil {
		return "", err
	}
	if err := writer.WriteField("fileIdx", strconv.Itoa(fileIdx)); err != nil {
		return "", err
	}
	part, err := writer.CreateFormFile("file", content.Name)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content.Data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/upload-file")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &form)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var data uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.Reference == "" {
		return "", fmt.Errorf("order service returned empty reference")
	}
	return data.Reference, nil
}

func (c *HTTPClient) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var data errorResponse
	_ = json.Unmarshal(body, &data)
	c.logger.Error("order service request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
	return StatusError{StatusCode: resp.StatusCode, Message: data.Error}
}

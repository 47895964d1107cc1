package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
	"github.com/polkiloo/folioorder/internal/domain/repository"
)

// pgxPool is the pool surface used by the storage, satisfied by both
// *pgxpool.Pool and pgxmock pools.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type attachmentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Attachments() repository.AttachmentRepository {
	return &attachmentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            payload JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS attachment_uploads (
            id SERIAL PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id),
            section_idx INT NOT NULL,
            file_idx INT NOT NULL,
            original_name TEXT NOT NULL,
            stored_reference TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_attachment_uploads_slot ON attachment_uploads(order_id, section_idx, file_idx, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, snapshot model.OrderSnapshot) (*model.OrderRecord, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	record := model.OrderRecord{
		ID:       uuid.NewString(),
		Snapshot: snapshot,
	}

	const query = `INSERT INTO orders (id, payload) VALUES ($1, $2) RETURNING created_at`
	if err := r.storage.pool.QueryRow(ctx, query, record.ID, payload).Scan(&record.CreatedAt); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.OrderRecord, error) {
	const query = `SELECT payload, created_at FROM orders WHERE id=$1`
	var (
		payload   []byte
		createdAt time.Time
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	record := model.OrderRecord{ID: id, CreatedAt: createdAt}
	if err := json.Unmarshal(payload, &record.Snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &record, nil
}

// --- AttachmentRepository implementation ---

func (r *attachmentRepository) Record(ctx context.Context, upload model.AttachmentUpload) (*model.AttachmentUpload, error) {
	const query = `INSERT INTO attachment_uploads (order_id, section_idx, file_idx, original_name, stored_reference)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		upload.OrderID, upload.SectionIndex, upload.FileIndex, upload.OriginalName, upload.StoredReference,
	).Scan(&upload.ID, &upload.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *attachmentRepository) ListByOrder(ctx context.Context, orderID string) ([]model.AttachmentUpload, error) {
	const query = `SELECT id, order_id, section_idx, file_idx, original_name, stored_reference, created_at
                   FROM attachment_uploads WHERE order_id=$1 ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AttachmentUpload
	for rows.Next() {
		var u model.AttachmentUpload
		if err := rows.Scan(&u.ID, &u.OrderID, &u.SectionIndex, &u.FileIndex, &u.OriginalName, &u.StoredReference, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

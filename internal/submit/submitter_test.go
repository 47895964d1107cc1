package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
)

type uploadCall struct {
	orderID    string
	sectionIdx int
	fileIdx    int
	name       string
}

type backendStub struct {
	CreateFn func(ctx context.Context, snapshot model.OrderSnapshot) (string, error)
	UploadFn func(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (string, error)

	created []model.OrderSnapshot
	uploads []uploadCall
}

func (b *backendStub) CreateOrder(ctx context.Context, snapshot model.OrderSnapshot) (string, error) {
	b.created = append(b.created, snapshot)
	if b.CreateFn != nil {
		return b.CreateFn(ctx, snapshot)
	}
	return "order-1", nil
}

func (b *backendStub) UploadAttachment(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (string, error) {
	b.uploads = append(b.uploads, uploadCall{orderID: orderID, sectionIdx: sectionIdx, fileIdx: fileIdx, name: content.Name})
	if b.UploadFn != nil {
		return b.UploadFn(ctx, orderID, sectionIdx, fileIdx, content)
	}
	return fmt.Sprintf("ref-s%d-f%d", sectionIdx, fileIdx), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// twoAttachmentDraft builds a draft with attachments at (0,0) and
// (1,0) and an unattached file at (1,1).
func twoAttachmentDraft(t *testing.T) *model.Draft {
	t.Helper()
	draft := model.NewDraft()
	draft.Name = "Ada Lovelace"
	draft.Email = "ada@example.com"

	if err := draft.UpdateFile(0, 0, model.FilePatch{Title: strPtr("A")}); err != nil {
		t.Fatalf("update file: %v", err)
	}
	if err := draft.SetAttachment(0, 0, &model.FileContent{Name: "a.pdf", Data: []byte("a")}); err != nil {
		t.Fatalf("set attachment: %v", err)
	}

	draft.AddSection()
	if err := draft.UpdateFile(1, 0, model.FilePatch{Title: strPtr("B")}); err != nil {
		t.Fatalf("update file: %v", err)
	}
	if err := draft.SetAttachment(1, 0, &model.FileContent{Name: "b.pdf", Data: []byte("b")}); err != nil {
		t.Fatalf("set attachment: %v", err)
	}
	if err := draft.AddFile(1); err != nil {
		t.Fatalf("add file: %v", err)
	}
	if err := draft.UpdateFile(1, 1, model.FilePatch{Title: strPtr("C")}); err != nil {
		t.Fatalf("update file: %v", err)
	}

	return draft
}

func strPtr(s string) *string { return &s }

func TestSubmitUploadsPendingSlotsInOrder(t *testing.T) {
	backend := &backendStub{}
	submitter := NewSubmitter(backend, testLogger())
	draft := twoAttachmentDraft(t)

	orderID, err := submitter.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if orderID != "order-1" {
		t.Fatalf("unexpected order id %q", orderID)
	}

	if len(backend.created) != 1 {
		t.Fatalf("expected one order creation, got %d", len(backend.created))
	}
	if len(backend.uploads) != 2 {
		t.Fatalf("expected exactly two uploads, got %d", len(backend.uploads))
	}
	first, second := backend.uploads[0], backend.uploads[1]
	if first.sectionIdx != 0 || first.fileIdx != 0 || first.name != "a.pdf" {
		t.Fatalf("unexpected first upload %+v", first)
	}
	if second.sectionIdx != 1 || second.fileIdx != 0 || second.name != "b.pdf" {
		t.Fatalf("unexpected second upload %+v", second)
	}

	if draft.Sections[0].Files[0].StoredReference != "ref-s0-f0" {
		t.Fatalf("expected first slot reconciled, got %q", draft.Sections[0].Files[0].StoredReference)
	}
	if draft.Sections[1].Files[0].StoredReference != "ref-s1-f0" {
		t.Fatalf("expected second slot reconciled, got %q", draft.Sections[1].Files[0].StoredReference)
	}
	if draft.Sections[1].Files[1].StoredReference != "" {
		t.Fatalf("expected unattached slot untouched, got %q", draft.Sections[1].Files[1].StoredReference)
	}
}

func TestSubmitSnapshotDropsAttachmentHandles(t *testing.T) {
	backend := &backendStub{}
	submitter := NewSubmitter(backend, testLogger())
	draft := twoAttachmentDraft(t)

	if _, err := submitter.Submit(context.Background(), draft); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	snapshot := backend.created[0]
	if snapshot.Name != "Ada Lovelace" {
		t.Fatalf("unexpected snapshot name %q", snapshot.Name)
	}
	if len(snapshot.Sections) != 2 {
		t.Fatalf("expected two snapshot sections, got %d", len(snapshot.Sections))
	}
	if snapshot.Sections[0].Files[0].Title != "A" {
		t.Fatalf("unexpected file title %q", snapshot.Sections[0].Files[0].Title)
	}
}

func TestSubmitRejectsMissingContact(t *testing.T) {
	backend := &backendStub{}
	submitter := NewSubmitter(backend, testLogger())
	draft := model.NewDraft()
	draft.Name = "Ada"
	draft.Email = "   "

	if _, err := submitter.Submit(context.Background(), draft); !errors.Is(err, domainErrors.ErrMissingContact) {
		t.Fatalf("expected ErrMissingContact, got %v", err)
	}
	if len(backend.created) != 0 {
		t.Fatal("expected no order creation for unsubmittable draft")
	}
}

func TestSubmitOrderCreateFailureSkipsUploads(t *testing.T) {
	cause := errors.New("connection refused")
	backend := &backendStub{
		CreateFn: func(ctx context.Context, snapshot model.OrderSnapshot) (string, error) {
			return "", cause
		},
	}
	submitter := NewSubmitter(backend, testLogger())
	draft := twoAttachmentDraft(t)

	_, err := submitter.Submit(context.Background(), draft)
	var createErr OrderCreateError
	if !errors.As(err, &createErr) {
		t.Fatalf("expected OrderCreateError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}
	if len(backend.uploads) != 0 {
		t.Fatalf("expected no uploads after failed creation, got %d", len(backend.uploads))
	}
}

func TestSubmitSecondUploadFailureKeepsFirstReference(t *testing.T) {
	cause := errors.New("disk full")
	backend := &backendStub{
		UploadFn: func(ctx context.Context, orderID string, sectionIdx, fileIdx int, content *model.FileContent) (string, error) {
			if sectionIdx == 1 && fileIdx == 0 {
				return "", cause
			}
			return fmt.Sprintf("ref-s%d-f%d", sectionIdx, fileIdx), nil
		},
	}
	submitter := NewSubmitter(backend, testLogger())
	draft := twoAttachmentDraft(t)

	orderID, err := submitter.Submit(context.Background(), draft)
	var attachErr AttachmentError
	if !errors.As(err, &attachErr) {
		t.Fatalf("expected AttachmentError, got %v", err)
	}
	if attachErr.SectionIndex != 1 || attachErr.FileIndex != 0 {
		t.Fatalf("unexpected failed slot s=%d f=%d", attachErr.SectionIndex, attachErr.FileIndex)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}

	// Partial success: the order id is returned and the first slot
	// stays reconciled.
	if orderID != "order-1" {
		t.Fatalf("expected order id despite upload failure, got %q", orderID)
	}
	if draft.Sections[0].Files[0].StoredReference != "ref-s0-f0" {
		t.Fatalf("expected first slot reconciled, got %q", draft.Sections[0].Files[0].StoredReference)
	}
	if draft.Sections[1].Files[0].StoredReference != "" {
		t.Fatalf("expected failed slot without reference, got %q", draft.Sections[1].Files[0].StoredReference)
	}
	if len(backend.uploads) != 2 {
		t.Fatalf("expected walk to stop after failure, got %d uploads", len(backend.uploads))
	}
}

func TestSubmitWithoutAttachments(t *testing.T) {
	backend := &backendStub{}
	submitter := NewSubmitter(backend, testLogger())
	draft := model.NewDraft()
	draft.Name = "Ada"
	draft.Email = "ada@example.com"

	orderID, err := submitter.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if orderID != "order-1" {
		t.Fatalf("unexpected order id %q", orderID)
	}
	if len(backend.uploads) != 0 {
		t.Fatalf("expected no uploads, got %d", len(backend.uploads))
	}
}

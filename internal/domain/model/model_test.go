package model

import (
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
)

func TestNewDraftInvariants(t *testing.T) {
	d := NewDraft()
	if len(d.Sections) != 1 {
		t.Fatalf("expected one seeded section, got %d", len(d.Sections))
	}
	if len(d.Sections[0].Files) != 1 {
		t.Fatalf("expected one seeded file slot, got %d", len(d.Sections[0].Files))
	}
	if len(d.ColorCodes) == 0 {
		t.Fatal("expected default palette")
	}
	if d.Hosting != HostingSelfHosted {
		t.Fatalf("expected self_hosted default, got %s", d.Hosting)
	}
}

func TestCanSubmit(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		want  bool
	}{
		{"empty", Draft{}, false},
		{"name only", Draft{Name: "Alice"}, false},
		{"email only", Draft{Email: "a@b.c"}, false},
		{"both", Draft{Name: "Alice", Email: "a@b.c"}, true},
		{"whitespace name", Draft{Name: "   ", Email: "a@b.c"}, false},
		{"whitespace email", Draft{Name: "Alice", Email: "\t\n"}, false},
		{"padded", Draft{Name: " Alice ", Email: " a@b.c "}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.draft.CanSubmit(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRemoveSectionNeverEmpties(t *testing.T) {
	d := NewDraft()
	if err := d.RemoveSection(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Sections) != 1 {
		t.Fatalf("expected last section to survive, got %d", len(d.Sections))
	}

	d.AddSection()
	if err := d.RemoveSection(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Sections) != 1 {
		t.Fatalf("expected one section after removal, got %d", len(d.Sections))
	}
	if d.Sections[0].Title != "New Section" {
		t.Fatalf("expected the appended section to remain, got %q", d.Sections[0].Title)
	}
}

func TestRemoveFileNeverEmpties(t *testing.T) {
	d := NewDraft()
	if err := d.RemoveFile(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Sections[0].Files) != 1 {
		t.Fatalf("expected last file slot to survive, got %d", len(d.Sections[0].Files))
	}

	if err := d.AddFile(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	title := "kept"
	if err := d.UpdateFile(0, 1, FilePatch{Title: &title}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.RemoveFile(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Sections[0].Files) != 1 || d.Sections[0].Files[0].Title != "kept" {
		t.Fatalf("expected only the second file to remain, got %+v", d.Sections[0].Files)
	}
}

func TestRemoveColorNeverEmpties(t *testing.T) {
	d := &Draft{ColorCodes: []string{"#ffffff"}}
	if err := d.RemoveColor(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.ColorCodes) != 1 {
		t.Fatal("expected last color to survive")
	}

	d.AddColor("#000000")
	if err := d.RemoveColor(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.ColorCodes) != 1 || d.ColorCodes[0] != "#000000" {
		t.Fatalf("expected only the appended color to remain, got %v", d.ColorCodes)
	}
}

func TestIndexOperationsRejectOutOfRange(t *testing.T) {
	d := NewDraft()
	ops := []struct {
		name string
		run  func() error
	}{
		{"remove section", func() error { return d.RemoveSection(5) }},
		{"remove section negative", func() error { return d.RemoveSection(-1) }},
		{"update section", func() error { return d.UpdateSection(5, SectionPatch{}) }},
		{"add file", func() error { return d.AddFile(5) }},
		{"remove file", func() error { return d.RemoveFile(0, 5) }},
		{"remove file bad section", func() error { return d.RemoveFile(5, 0) }},
		{"update file", func() error { return d.UpdateFile(0, 5, FilePatch{}) }},
		{"set attachment", func() error { return d.SetAttachment(0, 5, nil) }},
		{"set stored reference", func() error { return d.SetStoredReference(5, 0, "ref") }},
		{"update color", func() error { return d.UpdateColor(9, "#000000") }},
		{"remove color", func() error { return d.RemoveColor(-2) }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			if err := op.run(); !errors.Is(err, domainErrors.ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

func TestSetAttachmentClearsStoredReference(t *testing.T) {
	d := NewDraft()
	if err := d.SetStoredReference(0, 0, "uploads/old"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := &FileContent{Name: "cv.pdf", MimeType: "application/pdf", Data: []byte("x")}
	if err := d.SetAttachment(0, 0, content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Sections[0].Files[0].StoredReference; got != "" {
		t.Fatalf("expected stored reference cleared, got %q", got)
	}

	if err := d.SetStoredReference(0, 0, "uploads/new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetAttachment(0, 0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Sections[0].Files[0].StoredReference; got != "" {
		t.Fatalf("expected stored reference cleared on removal too, got %q", got)
	}
}

func TestUpdateSectionAndFilePatches(t *testing.T) {
	d := NewDraft()
	title := "Projects"
	if err := d.UpdateSection(0, SectionPatch{Title: &title}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Sections[0].Title != "Projects" {
		t.Fatalf("expected title update, got %q", d.Sections[0].Title)
	}
	if d.Sections[0].Description != "" {
		t.Fatalf("expected untouched description, got %q", d.Sections[0].Description)
	}

	topic := "golang"
	if err := d.UpdateFile(0, 0, FilePatch{Topic: &topic}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Sections[0].Files[0].Topic != "golang" {
		t.Fatalf("expected topic update, got %q", d.Sections[0].Files[0].Topic)
	}
}

func TestSnapshotDropsTransientFields(t *testing.T) {
	d := NewDraft()
	d.Name = "Alice"
	d.Email = "alice@example.com"
	d.Skills = []string{"go", "sql", "go"}
	title := "CV"
	if err := d.UpdateFile(0, 0, FilePatch{Title: &title}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetAttachment(0, 0, &FileContent{Name: "cv.pdf", Data: []byte("bytes")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetStoredReference(0, 0, "uploads/abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := d.Snapshot()
	if snap.Name != "Alice" || snap.Email != "alice@example.com" {
		t.Fatalf("expected contact fields carried, got %+v", snap)
	}
	if len(snap.Skills) != 3 {
		t.Fatalf("expected duplicate skills preserved in order, got %v", snap.Skills)
	}
	if len(snap.Sections) != 1 || len(snap.Sections[0].Files) != 1 {
		t.Fatalf("unexpected snapshot shape: %+v", snap.Sections)
	}
	if snap.Sections[0].Files[0].Title != "CV" {
		t.Fatalf("expected file metadata carried, got %+v", snap.Sections[0].Files[0])
	}

	// Mutating the snapshot must not leak back into the draft.
	snap.Sections[0].Files[0].Title = "changed"
	snap.ColorCodes[0] = "#000000"
	if d.Sections[0].Files[0].Title != "CV" {
		t.Fatal("snapshot mutation leaked into draft files")
	}
	if d.ColorCodes[0] == "#000000" {
		t.Fatal("snapshot mutation leaked into draft palette")
	}
}

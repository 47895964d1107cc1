package model

import (
	"strings"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
)

// HostingOption describes how the finished portfolio will be hosted.
type HostingOption string

const (
	HostingSelfHosted HostingOption = "self_hosted"
	HostingNeedHelp   HostingOption = "need_help"
)

// FileContent carries binary attachment data alongside its original
// name and MIME type. It exists only on the client side of the
// submission pipeline and is never serialized into an order record.
type FileContent struct {
	Name     string
	MimeType string
	Data     []byte
}

// FileDescriptor describes one work item inside a section. Attachment
// is transient; StoredReference is populated only after the slot's
// upload succeeds.
type FileDescriptor struct {
	Title           string
	Topic           string
	Description     string
	Attachment      *FileContent
	StoredReference string
}

// Section groups ordered file descriptors under a common title.
type Section struct {
	Title       string
	Description string
	Files       []FileDescriptor
}

// Draft is the mutable order-in-progress held by a single caller.
// Sections, per-section file lists, and color codes never shrink below
// one element; removals that would empty them are no-ops.
type Draft struct {
	Name          string
	Tagline       string
	LinkedIn      string
	Email         string
	ContactNumber string
	About         string
	Skills        []string
	Sections      []Section
	ColorCodes    []string
	Hosting       HostingOption
	OtherComments string
}

// SectionPatch carries optional updates for a section. Nil fields are
// left untouched.
type SectionPatch struct {
	Title       *string
	Description *string
}

// FilePatch carries optional updates for a file descriptor.
type FilePatch struct {
	Title       *string
	Topic       *string
	Description *string
}

var defaultColorCodes = []string{"#ffffff", "#cfd2d6", "#d4af37"}

func newFileDescriptor() FileDescriptor {
	return FileDescriptor{}
}

func newSection(title string) Section {
	return Section{Title: title, Files: []FileDescriptor{newFileDescriptor()}}
}

// NewDraft creates a draft satisfying the structural invariants: one
// empty section with one empty file slot and the default palette.
func NewDraft() *Draft {
	return &Draft{
		Sections:   []Section{newSection("")},
		ColorCodes: append([]string(nil), defaultColorCodes...),
		Hosting:    HostingSelfHosted,
	}
}

// CanSubmit reports whether the draft carries the minimum contact data
// required by the order endpoint.
func (d *Draft) CanSubmit() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Email) != ""
}

// AddSection appends an empty section.
func (d *Draft) AddSection() {
	d.Sections = append(d.Sections, newSection("New Section"))
}

// RemoveSection deletes the section at idx. Removing the last
// remaining section is a no-op.
func (d *Draft) RemoveSection(idx int) error {
	if idx < 0 || idx >= len(d.Sections) {
		return domainErrors.ErrOutOfRange
	}
	if len(d.Sections) == 1 {
		return nil
	}
	d.Sections = append(d.Sections[:idx], d.Sections[idx+1:]...)
	return nil
}

// UpdateSection applies non-nil patch fields to the section at idx.
func (d *Draft) UpdateSection(idx int, patch SectionPatch) error {
	if idx < 0 || idx >= len(d.Sections) {
		return domainErrors.ErrOutOfRange
	}
	sec := &d.Sections[idx]
	if patch.Title != nil {
		sec.Title = *patch.Title
	}
	if patch.Description != nil {
		sec.Description = *patch.Description
	}
	return nil
}

// AddFile appends an empty file slot to the section at sectionIdx.
func (d *Draft) AddFile(sectionIdx int) error {
	if sectionIdx < 0 || sectionIdx >= len(d.Sections) {
		return domainErrors.ErrOutOfRange
	}
	sec := &d.Sections[sectionIdx]
	sec.Files = append(sec.Files, newFileDescriptor())
	return nil
}

// RemoveFile deletes one file slot. Removing a section's last file is
// a no-op.
func (d *Draft) RemoveFile(sectionIdx, fileIdx int) error {
	if sectionIdx < 0 || sectionIdx >= len(d.Sections) {
		return domainErrors.ErrOutOfRange
	}
	sec := &d.Sections[sectionIdx]
	if fileIdx < 0 || fileIdx >= len(sec.Files) {
		return domainErrors.ErrOutOfRange
	}
	if len(sec.Files) == 1 {
		return nil
	}
	sec.Files = append(sec.Files[:fileIdx], sec.Files[fileIdx+1:]...)
	return nil
}

// UpdateFile applies non-nil patch fields to one file descriptor.
func (d *Draft) UpdateFile(sectionIdx, fileIdx int, patch FilePatch) error {
	file, err := d.file(sectionIdx, fileIdx)
	if err != nil {
		return err
	}
	if patch.Title != nil {
		file.Title = *patch.Title
	}
	if patch.Topic != nil {
		file.Topic = *patch.Topic
	}
	if patch.Description != nil {
		file.Description = *patch.Description
	}
	return nil
}

// SetAttachment replaces the binary content of one slot. Any stored
// reference recorded for the slot is cleared: a reference must never
// outlive the bytes that produced it.
func (d *Draft) SetAttachment(sectionIdx, fileIdx int, content *FileContent) error {
	file, err := d.file(sectionIdx, fileIdx)
	if err != nil {
		return err
	}
	file.Attachment = content
	file.StoredReference = ""
	return nil
}

// SetStoredReference records the reference returned by a successful
// upload of one slot.
func (d *Draft) SetStoredReference(sectionIdx, fileIdx int, ref string) error {
	file, err := d.file(sectionIdx, fileIdx)
	if err != nil {
		return err
	}
	file.StoredReference = ref
	return nil
}

// AddColor appends a palette entry.
func (d *Draft) AddColor(code string) {
	d.ColorCodes = append(d.ColorCodes, code)
}

// UpdateColor replaces the palette entry at idx.
func (d *Draft) UpdateColor(idx int, code string) error {
	if idx < 0 || idx >= len(d.ColorCodes) {
		return domainErrors.ErrOutOfRange
	}
	d.ColorCodes[idx] = code
	return nil
}

// RemoveColor deletes the palette entry at idx. Removing the last
// color is a no-op.
func (d *Draft) RemoveColor(idx int) error {
	if idx < 0 || idx >= len(d.ColorCodes) {
		return domainErrors.ErrOutOfRange
	}
	if len(d.ColorCodes) == 1 {
		return nil
	}
	d.ColorCodes = append(d.ColorCodes[:idx], d.ColorCodes[idx+1:]...)
	return nil
}

func (d *Draft) file(sectionIdx, fileIdx int) (*FileDescriptor, error) {
	if sectionIdx < 0 || sectionIdx >= len(d.Sections) {
		return nil, domainErrors.ErrOutOfRange
	}
	sec := &d.Sections[sectionIdx]
	if fileIdx < 0 || fileIdx >= len(sec.Files) {
		return nil, domainErrors.ErrOutOfRange
	}
	return &sec.Files[fileIdx], nil
}

// Snapshot projects the draft onto its serializable, attachment-free
// order record payload. Stored references are not carried either; they
// are reconstructed from attachment-upload records after persistence.
func (d *Draft) Snapshot() OrderSnapshot {
	sections := make([]SnapshotSection, 0, len(d.Sections))
	for _, sec := range d.Sections {
		files := make([]SnapshotFile, 0, len(sec.Files))
		for _, f := range sec.Files {
			files = append(files, SnapshotFile{
				Title:       f.Title,
				Topic:       f.Topic,
				Description: f.Description,
			})
		}
		sections = append(sections, SnapshotSection{
			Title:       sec.Title,
			Description: sec.Description,
			Files:       files,
		})
	}
	return OrderSnapshot{
		Name:          d.Name,
		Tagline:       d.Tagline,
		LinkedIn:      d.LinkedIn,
		Email:         d.Email,
		ContactNumber: d.ContactNumber,
		About:         d.About,
		Skills:        append([]string(nil), d.Skills...),
		Sections:      sections,
		ColorCodes:    append([]string(nil), d.ColorCodes...),
		Hosting:       d.Hosting,
		OtherComments: d.OtherComments,
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/polkiloo/folioorder/internal/domain/model"
)

type options struct {
	serverURL string
	draftPath string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("foliosubmit", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.serverURL, "server", "http://localhost:8080", "order service base URL")
	fs.StringVar(&opts.draftPath, "draft", "", "path to the draft JSON file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.draftPath == "" {
		return nil, fmt.Errorf("-draft is required")
	}
	return opts, nil
}

// draftFile is the on-disk submission input: the order fields plus an
// optional local path per file slot pointing at the bytes to upload.
type draftFile struct {
	Name          string            `json:"name"`
	Tagline       string            `json:"tagline"`
	LinkedIn      string            `json:"linkedin"`
	Email         string            `json:"email"`
	ContactNumber string            `json:"contactNumber"`
	About         string            `json:"about"`
	Skills        []string          `json:"skills"`
	Sections      []draftUserSection `json:"sections"`
	ColorCodes    []string          `json:"colorCodes"`
	Hosting       string            `json:"hostingOption"`
	OtherComments string            `json:"otherComments"`
}

type draftUserSection struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Files       []draftUserFile `json:"files"`
}

type draftUserFile struct {
	Title       string `json:"title"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

func loadDraftFile(path string) (*draftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	var input draftFile
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parse draft: %w", err)
	}
	return &input, nil
}

// toDraft builds the submission draft, reading every referenced file
// relative to baseDir.
func (f *draftFile) toDraft(baseDir string) (*model.Draft, error) {
	draft := model.NewDraft()
	draft.Name = f.Name
	draft.Tagline = f.Tagline
	draft.LinkedIn = f.LinkedIn
	draft.Email = f.Email
	draft.ContactNumber = f.ContactNumber
	draft.About = f.About
	draft.Skills = append([]string(nil), f.Skills...)
	draft.OtherComments = f.OtherComments
	if f.Hosting != "" {
		draft.Hosting = model.HostingOption(f.Hosting)
	}
	if len(f.ColorCodes) > 0 {
		draft.ColorCodes = append([]string(nil), f.ColorCodes...)
	}

	for sectionIdx, section := range f.Sections {
		if sectionIdx > 0 {
			draft.AddSection()
		}
		title := section.Title
		description := section.Description
		if err := draft.UpdateSection(sectionIdx, model.SectionPatch{Title: &title, Description: &description}); err != nil {
			return nil, err
		}

		for fileIdx, file := range section.Files {
			if fileIdx > 0 {
				if err := draft.AddFile(sectionIdx); err != nil {
					return nil, err
				}
			}
			fileTitle := file.Title
			topic := file.Topic
			fileDescription := file.Description
			if err := draft.UpdateFile(sectionIdx, fileIdx, model.FilePatch{
				Title:       &fileTitle,
				Topic:       &topic,
				Description: &fileDescription,
			}); err != nil {
				return nil, err
			}

			if file.Path == "" {
				continue
			}
			content, err := readAttachment(baseDir, file.Path)
			if err != nil {
				return nil, err
			}
			if err := draft.SetAttachment(sectionIdx, fileIdx, content); err != nil {
				return nil, err
			}
		}
	}

	return draft, nil
}

func readAttachment(baseDir, path string) (*model.FileContent, error) {
	resolved := path
	if !filepath.IsAbs(path) {
		resolved = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read attachment %s: %w", path, err)
	}
	return &model.FileContent{
		Name:     filepath.Base(path),
		MimeType: mime.TypeByExtension(filepath.Ext(path)),
		Data:     data,
	}, nil
}

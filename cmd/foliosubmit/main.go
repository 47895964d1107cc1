package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/polkiloo/folioorder/internal/adapter/orderapi"
	"github.com/polkiloo/folioorder/internal/submit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "foliosubmit: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	input, err := loadDraftFile(opts.draftPath)
	if err != nil {
		return err
	}

	draft, err := input.toDraft(filepath.Dir(opts.draftPath))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	client, err := orderapi.NewHTTPClient(opts.serverURL, logger)
	if err != nil {
		return err
	}

	submitter := submit.NewSubmitter(client, logger)
	orderID, err := submitter.Submit(ctx, draft)
	if err != nil {
		if orderID != "" {
			// Partial success: the order exists, report it before
			// surfacing the failed slot.
			fmt.Printf("order created: %s (with missing attachments)\n", orderID)
		}
		return err
	}

	fmt.Printf("order created: %s\n", orderID)
	for sectionIdx := range draft.Sections {
		for fileIdx := range draft.Sections[sectionIdx].Files {
			ref := draft.Sections[sectionIdx].Files[fileIdx].StoredReference
			if ref != "" {
				fmt.Printf("  uploaded s%d/f%d -> %s\n", sectionIdx, fileIdx, ref)
			}
		}
	}
	return nil
}

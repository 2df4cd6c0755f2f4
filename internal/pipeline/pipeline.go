// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one parse: bootstrap the workspace, upload the
// document, print and save the result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/docparse/internal/archive"
	"github.com/pdiddy/docparse/internal/output"
	"github.com/pdiddy/docparse/internal/submit"
	"github.com/pdiddy/docparse/internal/workspace"
	"github.com/pdiddy/docparse/pkg/types"
)

// Submitter uploads one document and returns the service's JSON.
type Submitter interface {
	Submit(ctx context.Context, path string) (types.ParseResult, error)
	Endpoint() string
}

// Recorder stores the outcome of a run.
type Recorder interface {
	Record(ctx context.Context, rec types.RunRecord) error
}

// Deps are the collaborators of a run. Archiver and History may be nil.
type Deps struct {
	Submitter Submitter
	Archiver  *archive.Archiver
	History   Recorder

	// Out receives progress lines and the formatted result.
	Out io.Writer
	// Warn receives non-fatal problems. Nil means Out.
	Warn io.Writer

	// Now defaults to time.Now.
	Now func() time.Time
}

// Outcome describes a successful run.
type Outcome struct {
	RunID        string
	DocumentPath string
	OutputPath   string
	Result       types.ParseResult

	// CreatedDirs lists workspace directories this run had to create.
	CreatedDirs []string

	// ArchiveLocation is set when the result was mirrored to object storage.
	ArchiveLocation string
}

// Run executes one parse for cfg. Submission errors are returned unchanged
// (*submit.NotFoundError or *submit.TransportError) and leave the output
// file untouched. Archive and history failures are reported to Warn only.
func Run(ctx context.Context, deps Deps, cfg types.WorkspaceConfig) (*Outcome, error) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	warn := deps.Warn
	if warn == nil {
		warn = deps.Out
	}

	layout := workspace.FromConfig(cfg)
	out := &Outcome{
		RunID:        uuid.NewString(),
		DocumentPath: layout.DocumentPath(cfg.Document),
		OutputPath:   layout.OutputPath(cfg.OutputFile),
	}
	started := now()

	finish := func(status types.RunStatus, runErr error) {
		if deps.History == nil {
			return
		}
		rec := types.RunRecord{
			ID:           out.RunID,
			DocumentPath: out.DocumentPath,
			OutputPath:   out.OutputPath,
			Status:       status,
			ResultBytes:  len(out.Result),
			StartedAt:    started,
			Duration:     now().Sub(started),
		}
		if runErr != nil {
			rec.Error = runErr.Error()
		}
		if err := deps.History.Record(ctx, rec); err != nil {
			fmt.Fprintf(warn, "warning: %v\n", err)
		}
	}

	created, err := layout.Ensure()
	out.CreatedDirs = created
	for _, dir := range created {
		fmt.Fprintf(deps.Out, "Created %s directory\n", filepath.Base(dir))
	}
	if err != nil {
		finish(types.RunFailed, err)
		return nil, err
	}

	info, err := os.Stat(out.DocumentPath)
	if err != nil {
		fmt.Fprintf(deps.Out, "Document not found at %s\n", out.DocumentPath)
		fmt.Fprintln(deps.Out, "Please make sure your document exists in the documents folder")
		nf := &submit.NotFoundError{Path: out.DocumentPath, Err: err}
		finish(types.RunNotFound, nf)
		return nil, nf
	}
	fmt.Fprintf(deps.Out, "Found document at %s\n", out.DocumentPath)

	name := filepath.Base(out.DocumentPath)
	fmt.Fprintf(deps.Out, "Uploading %s to %s...\n", name, deps.Submitter.Endpoint())

	result, err := deps.Submitter.Submit(ctx, out.DocumentPath)
	if err != nil {
		finish(statusOf(err), err)
		return nil, err
	}
	out.Result = result
	fmt.Fprintf(deps.Out, "Successfully parsed %s\n", name)

	pretty, err := output.Pretty(result)
	if err != nil {
		finish(types.RunFailed, err)
		return nil, err
	}
	fmt.Fprintln(deps.Out, "Parsed Content:")
	fmt.Fprintln(deps.Out, string(pretty))

	if err := output.WriteJSON(out.OutputPath, result); err != nil {
		finish(types.RunFailed, err)
		return nil, fmt.Errorf("saving result: %w", err)
	}

	if cfg.WriteMetadata {
		meta := types.ResultMetadata{
			RunID:          out.RunID,
			SourceDocument: out.DocumentPath,
			DocumentBytes:  info.Size(),
			Endpoint:       deps.Submitter.Endpoint(),
			ResultBytes:    len(result),
			SavedAt:        now().UTC(),
		}
		if err := output.WriteMetadata(workspace.MetadataPath(out.OutputPath), meta); err != nil {
			fmt.Fprintf(warn, "warning: %v\n", err)
		}
	}

	if deps.Archiver != nil {
		loc, err := deps.Archiver.Put(ctx, out.DocumentPath, out.RunID, pretty)
		if err != nil {
			fmt.Fprintf(warn, "warning: %v\n", err)
		} else {
			out.ArchiveLocation = loc.Location
			fmt.Fprintf(deps.Out, "Archived result to %s\n", loc.Location)
		}
	}

	fmt.Fprintf(deps.Out, "Parsing complete! Output saved to %s\n", out.OutputPath)
	finish(types.RunSucceeded, nil)
	return out, nil
}

// statusOf maps a submission error to the ledger status.
func statusOf(err error) types.RunStatus {
	var nf *submit.NotFoundError
	var te *submit.TransportError
	switch {
	case errors.As(err, &nf):
		return types.RunNotFound
	case errors.As(err, &te):
		return types.RunTransportFailed
	default:
		return types.RunFailed
	}
}

// Package pipeline implements the write pipeline: it renders templates,
// performs passthrough copies, and produces the build record for a pass.
package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kilnworks/kiln/internal/adapters/fs"
	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Writer = (*Writer)(nil)

// Writer renders the project into the configured output target. A single
// Writer instance is not safe for concurrent passes; the session layer
// serializes builds.
type Writer struct {
	config ports.ConfigSource
	logger ports.Logger
	hasher *fs.Hasher

	mu              sync.Mutex
	counts          domain.BuildCounts
	contentHashes   map[string]uint64
	incrementalFile string
	initialBuild    bool
	incremental     bool
}

// NewWriter creates a write pipeline.
func NewWriter(config ports.ConfigSource, logger ports.Logger, hasher *fs.Hasher) *Writer {
	return &Writer{
		config:        config,
		logger:        logger,
		hasher:        hasher,
		contentHashes: make(map[string]uint64),
	}
}

// Write runs a full pass against the filesystem output target.
func (w *Writer) Write(ctx context.Context) (*domain.BuildRecord, error) {
	return w.pass(ctx, domain.TargetFiles, domain.ModeJSON, nil)
}

// Document runs a pass that collects results in memory or streams them to
// out, depending on mode.
func (w *Writer) Document(ctx context.Context, mode domain.DocumentMode, out io.Writer) (*domain.BuildRecord, error) {
	target := domain.TargetDocument
	if mode == domain.ModeNDJSON {
		target = domain.TargetStream
	}
	return w.pass(ctx, target, mode, out)
}

func (w *Writer) pass(ctx context.Context, target domain.BuildTarget, mode domain.DocumentMode, out io.Writer) (*domain.BuildRecord, error) {
	w.mu.Lock()
	if w.initialBuild {
		// A fresh watch session always starts from a clean slate.
		w.contentHashes = make(map[string]uint64)
		w.initialBuild = false
	}
	narrowTo := ""
	if w.incremental && w.incrementalFile != "" {
		narrowTo = w.incrementalFile
	}
	w.counts = domain.BuildCounts{}
	w.mu.Unlock()

	layout := w.config.Layout()
	record := &domain.BuildRecord{}

	if target == domain.TargetFiles {
		if err := os.MkdirAll(domain.StripLeadingDotSlash(layout.Output), domain.DirPerm); err != nil {
			return nil, zerr.Wrap(err, domain.ErrWriteFailed.Error())
		}
		copies, err := w.runPassthrough(ctx, layout)
		if err != nil {
			return nil, err
		}
		record.Copies = copies
	}

	data, err := loadData(layout)
	if err != nil {
		return nil, err
	}

	inputs, err := w.collectInputs(layout)
	if err != nil {
		return nil, err
	}

	renderer := newRenderer(w.config, layout, data)

	var enc *json.Encoder
	if target == domain.TargetStream {
		enc = json.NewEncoder(out)
	}

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if narrowTo != "" && input != narrowTo {
			w.addSkipped()
			continue
		}

		result, err := renderer.render(input)
		if err != nil {
			return nil, err
		}

		switch target {
		case domain.TargetFiles:
			written, err := w.writeResult(layout, result)
			if err != nil {
				return nil, err
			}
			if written {
				w.addWritten()
			} else {
				w.addSkipped()
			}
			// Content is only carried for in-memory targets.
			result.Content = ""
		case domain.TargetDocument:
			w.addWritten()
		case domain.TargetStream:
			if err := enc.Encode(result); err != nil {
				return nil, zerr.Wrap(err, domain.ErrWriteFailed.Error())
			}
			w.addWritten()
		}
		record.Templates = append(record.Templates, result)
	}

	record.Counts = w.Counts()
	return record, nil
}

// writeResult writes one rendered template, skipping the write when the
// rendered content matches the previous pass. Reports whether a write
// happened.
func (w *Writer) writeResult(layout domain.DirLayout, result domain.TemplateResult) (bool, error) {
	content := []byte(result.Content)
	hash := w.hasher.HashBytes(content)

	w.mu.Lock()
	prev, known := w.contentHashes[result.InputPath]
	w.contentHashes[result.InputPath] = hash
	w.mu.Unlock()

	outPath := domain.StripLeadingDotSlash(result.OutputPath)
	if known && prev == hash {
		if _, err := os.Stat(outPath); err == nil {
			return false, nil
		}
	}

	outRoot := domain.StripLeadingDotSlash(domain.NormalizePath(layout.Output))
	if !domain.IsWithin(outRoot, result.OutputPath) {
		return false, zerr.With(domain.ErrOutputOutsideRoot, "file", result.OutputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "file", result.OutputPath)
	}
	if err := os.WriteFile(outPath, content, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "file", result.OutputPath)
	}
	return true, nil
}

// collectInputs walks the input tree and returns the normalized template
// paths, in walk order. The includes, data, and output directories are
// excluded, as are dotfiles.
func (w *Writer) collectInputs(layout domain.DirLayout) ([]string, error) {
	root := domain.StripLeadingDotSlash(domain.NormalizePath(layout.Input))
	if root == "" {
		root = "."
	}

	skipDirs := []string{
		domain.StripLeadingDotSlash(layout.IncludesPath()),
		domain.StripLeadingDotSlash(layout.DataPath()),
		domain.StripLeadingDotSlash(domain.NormalizePath(layout.Output)),
	}

	extensions := w.config.Extensions()
	var inputs []string

	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := domain.StripLeadingDotSlash(domain.NormalizePath(p))
		if d.IsDir() {
			if p == root {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			for _, skip := range skipDirs {
				if skip != "" && domain.IsWithin(skip, rel) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if _, ok := extensions[strings.ToLower(path.Ext(p))]; !ok {
			return nil
		}
		inputs = append(inputs, domain.NormalizePath(p))
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to walk input directory")
	}
	return inputs, nil
}

// Counts returns the telemetry counters for the most recent pass.
func (w *Writer) Counts() domain.BuildCounts {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.counts
}

func (w *Writer) addWritten() {
	w.mu.Lock()
	w.counts.Written++
	w.mu.Unlock()
}

func (w *Writer) addSkipped() {
	w.mu.Lock()
	w.counts.Skipped++
	w.mu.Unlock()
}

func (w *Writer) addCopied() {
	w.mu.Lock()
	w.counts.Copied++
	w.mu.Unlock()
}

// SetIncrementalFile narrows the next pass to a single changed template.
func (w *Writer) SetIncrementalFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.incrementalFile = domain.NormalizePath(path)
}

// ResetIncrementalFile clears the incremental narrowing.
func (w *Writer) ResetIncrementalFile() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.incrementalFile = ""
}

// SetRunInitialBuild marks the next pass as the first of a watch session.
func (w *Writer) SetRunInitialBuild(initial bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.initialBuild = initial
}

// SetIncrementalBuild toggles incremental mode for subsequent passes.
func (w *Writer) SetIncrementalBuild(incremental bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.incremental = incremental
}

// Carryover returns the pipeline's current carryover snapshot.
func (w *Writer) Carryover() ports.WriterCarryover {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ports.WriterCarryover{ContentHashes: w.contentHashes}
}

// RestoreCarryover copies a previously captured snapshot onto the pipeline.
func (w *Writer) RestoreCarryover(c ports.WriterCarryover) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if c.ContentHashes != nil {
		w.contentHashes = c.ContentHashes
	}
}

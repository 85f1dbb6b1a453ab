package pipeline

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kilnworks/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// runPassthrough copies every file matched by the passthrough globs into the
// output directory, preserving the input-relative path. Copies whose content
// hash matches the previous pass are skipped.
func (w *Writer) runPassthrough(ctx context.Context, layout domain.DirLayout) ([]domain.CopyResult, error) {
	root := domain.StripLeadingDotSlash(domain.NormalizePath(layout.Input))
	if root == "" {
		root = "."
	}
	outRoot := domain.StripLeadingDotSlash(domain.NormalizePath(layout.Output))

	var copies []domain.CopyResult
	for _, glob := range w.config.PassthroughGlobs() {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(glob)))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "glob", glob)
		}
		for _, match := range matches {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			input := domain.NormalizePath(match)
			rel := domain.StripLeadingDotSlash(input)
			if root != "." {
				rel = strings.TrimPrefix(rel, root+"/")
			}
			if domain.IsWithin(outRoot, rel) {
				continue
			}
			output := domain.NormalizePath(path.Join(outRoot, rel))

			copied, err := w.copyFile(input, output)
			if err != nil {
				return nil, err
			}
			if copied {
				w.addCopied()
			} else {
				w.addSkipped()
			}
			copies = append(copies, domain.CopyResult{
				InputPath:  input,
				OutputPath: output,
				Skipped:    !copied,
			})
		}
	}
	return copies, nil
}

// copyFile copies input to output unless the content hash matches the
// previous pass and the output already exists. Reports whether a copy
// happened.
func (w *Writer) copyFile(input, output string) (bool, error) {
	hash, err := w.hasher.HashFile(input)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrCopyFailed.Error())
	}

	w.mu.Lock()
	prev, known := w.contentHashes[input]
	w.contentHashes[input] = hash
	w.mu.Unlock()

	outPath := domain.StripLeadingDotSlash(output)
	if known && prev == hash {
		if _, err := os.Stat(outPath); err == nil {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "file", output)
	}

	src, err := os.Open(domain.StripLeadingDotSlash(input))
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "file", input)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "file", output)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "file", output)
	}
	return true, nil
}

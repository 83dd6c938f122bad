// Package normalize trims every file in a category so the category's total
// duration matches a target.
package normalize

import (
	"context"
	"math"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/curator/internal/categorydir"
	"github.com/veedubyou/stem-curator/src/curator/internal/progress"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
)

type Trimmer interface {
	Trim(ctx context.Context, src string, dst string, length string) error
}

func NewNormalizer(trimmer Trimmer, observer progress.Observer) Normalizer {
	if observer == nil {
		observer = progress.Nop{}
	}

	return Normalizer{
		trimmer:  trimmer,
		observer: observer,
	}
}

type Normalizer struct {
	trimmer  Trimmer
	observer progress.Observer
}

// PerFileLength splits total evenly across count files.
func PerFileLength(total float64, count int) (float64, error) {
	if err := validateTotal(total); err != nil {
		return 0, err
	}

	if count == 0 {
		return 0, mark.Message(EmptyDirectory, "No files to share the total duration")
	}

	return total / float64(count), nil
}

// NormalizeTree normalizes each category under root on its own. A category
// that fails is recorded in the summary and does not stop the others.
func (n Normalizer) NormalizeTree(ctx context.Context, root string, total float64, exts ...string) (*report.Summary, error) {
	if err := validateTotal(total); err != nil {
		return nil, err
	}

	categories, err := categorydir.Categories(root)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to list categories to normalize")
	}

	log.WithFields(log.Fields{
		"root":        root,
		"totalLength": total,
		"categories":  len(categories),
	}).Info("Normalizing category durations")

	summary := report.NewSummary("trim-to-total")

	n.observer.Start(len(categories))
	defer n.observer.Finish()

	for _, category := range categories {
		trimmed, err := n.Normalize(ctx, filepath.Join(root, category), total, exts...)
		if err != nil {
			summary.Add(report.Unit{Name: category, Status: report.StatusFailed, Files: trimmed, Err: err})
		} else {
			summary.OK(category, trimmed)
		}

		n.observer.Step(category)
	}

	return summary, nil
}

// Normalize trims every audio file in dir to total divided by the file
// count. Each trimmed copy is named <stem>_<length>s<ext> and replaces its
// original only once it exists; a file whose trim fails keeps its original.
// It returns how many files were replaced.
func (n Normalizer) Normalize(ctx context.Context, dir string, total float64, exts ...string) (int, error) {
	errctx := cerr.Field("dir", dir)

	files, err := categorydir.AudioFiles(dir, exts...)
	if err != nil {
		return 0, errctx.Wrap(err).Error("Failed to list files to trim")
	}

	perFile, err := PerFileLength(total, len(files))
	if err != nil {
		return 0, errctx.Wrap(err).Error("Cannot normalize directory")
	}

	length := FormatSeconds(perFile)
	logger := log.WithFields(log.Fields{
		"dir":    dir,
		"files":  len(files),
		"length": length,
	})
	logger.Info("Trimming files")

	replaced := 0
	var firstErr error
	for _, name := range files {
		if err := n.trimFile(ctx, dir, name, length); err != nil {
			logger.WithError(err).WithField("file", name).Error("Failed to trim file, keeping original")
			if firstErr == nil {
				firstErr = errctx.Wrap(err).Error("Failed to trim every file")
			}
			continue
		}

		replaced++
	}

	return replaced, firstErr
}

func (n Normalizer) trimFile(ctx context.Context, dir string, name string, length string) error {
	src := filepath.Join(dir, name)
	dst := filepath.Join(dir, TrimmedName(name, length))
	errctx := cerr.Field("file", src).Field("trimmed_file", dst)

	if _, err := os.Lstat(dst); err == nil {
		return mark.Wrap(errctx.Error("Trimmed name is already taken"), NameTaken, "Another file already has the trimmed name")
	} else if !os.IsNotExist(err) {
		return errctx.Wrap(err).Error("Failed to check the trimmed name")
	}

	if err := n.trimmer.Trim(ctx, src, dst, length); err != nil {
		removePartial(dst)
		return errctx.Wrap(err).Error("Trim failed")
	}

	info, err := os.Stat(dst)
	if err != nil {
		return errctx.Wrap(err).Error("Trim reported success but produced no file")
	}

	if !info.Mode().IsRegular() {
		return errctx.Error("Trim output is not a regular file")
	}

	if err := os.Remove(src); err != nil {
		return errctx.Wrap(err).Error("Failed to remove original after trimming")
	}

	return nil
}

func removePartial(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("file", path).Warn("Failed to remove partial trim output")
	}
}

func validateTotal(total float64) error {
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return mark.Messagef(InvalidDuration, "Total length must be a positive number of seconds, got %v", total)
	}

	return nil
}

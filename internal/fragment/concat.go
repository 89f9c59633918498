package fragment

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/grampay/rulecat/internal/fsutil"
)

// Result describes a completed concatenation. Fragment contents are not
// retained.
type Result struct {
	OutputPath string
	Fragments  []Fragment
	Bytes      int
}

type options struct {
	compare    Comparator
	separator  string
	extensions []string
	exclude    []string
	logger     *slog.Logger
}

// Option configures Plan and Concatenate.
type Option func(*options)

// WithComparator overrides the default ByOrder comparator.
func WithComparator(c Comparator) Option {
	return func(o *options) { o.compare = c }
}

// WithSeparator inserts sep between consecutive fragments.
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// WithExtensions restricts fragments to the given extensions
// (case-insensitive, with or without the leading dot).
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		for _, e := range exts {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			o.extensions = append(o.extensions, e)
		}
	}
}

// WithExclude keeps the given paths out of the fragment list.
func WithExclude(paths ...string) Option {
	return func(o *options) { o.exclude = append(o.exclude, paths...) }
}

// WithLogger sets the logger for per-fragment debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.compare == nil {
		o.compare = ByOrder
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Plan lists the fragments of sourceDir in merge order without reading
// their contents.
func Plan(ctx context.Context, sourceDir string, opts ...Option) ([]Fragment, error) {
	o := newOptions(opts)
	if err := checkSource(sourceDir); err != nil {
		return nil, err
	}
	return list(ctx, sourceDir, o)
}

// Concatenate merges every fragment in sourceDir, ordered by the configured
// comparator, and writes the result to outputPath, replacing any existing
// file. Nothing is written unless every fragment was read.
func Concatenate(ctx context.Context, sourceDir, outputPath string, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	if err := checkSource(sourceDir); err != nil {
		return nil, err
	}
	if err := checkDestination(outputPath); err != nil {
		return nil, err
	}

	o.exclude = append(o.exclude, outputPath)
	frags, err := list(ctx, sourceDir, o)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i := range frags {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f := &frags[i]
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, &FragmentError{Name: f.Name, Path: f.Path, Err: err}
		}
		if i > 0 {
			buf.WriteString(o.separator)
		}
		buf.Write(content)
		o.logger.Debug("fragment merged", "name", f.Name, "order", f.Order, "bytes", len(content))
	}

	if err := fsutil.WriteFileAtomic(outputPath, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDestinationUnwritable, outputPath, err)
	}

	o.logger.Debug("output written", "path", outputPath, "fragments", len(frags), "bytes", buf.Len())
	return &Result{OutputPath: outputPath, Fragments: frags, Bytes: buf.Len()}, nil
}

func checkSource(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceNotFound, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, dir)
	}
	return nil
}

func checkDestination(path string) error {
	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDestinationUnwritable, parent, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDestinationUnwritable, parent)
	}
	if fsutil.IsDir(path) {
		return fmt.Errorf("%w: %s is a directory", ErrDestinationUnwritable, path)
	}
	return nil
}

// list reads the direct entries of dir, drops non-fragments and sorts the
// rest. os.ReadDir returns entries sorted by filename, which is the
// listing order ties fall back to.
func list(ctx context.Context, dir string, o *options) ([]Fragment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, dir, err)
	}

	frags := make([]Fragment, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		path := filepath.Join(dir, name)
		if !o.isFragment(entry, path) {
			o.logger.Debug("entry skipped", "name", name)
			continue
		}
		frags = append(frags, Fragment{Name: name, Path: path, Order: OrderKey(name)})
	}

	Sort(frags, o.compare)
	return frags, nil
}

func (o *options) isFragment(entry fs.DirEntry, path string) bool {
	if fsutil.IsTempFile(entry.Name()) {
		return false
	}
	switch {
	case entry.IsDir():
		return false
	case entry.Type()&fs.ModeSymlink != 0:
		// Broken links stay in the list and fail loudly on read.
		if fsutil.IsDir(path) {
			return false
		}
	case !entry.Type().IsRegular():
		return false
	}
	if len(o.extensions) > 0 {
		if !slices.Contains(o.extensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			return false
		}
	}
	for _, ex := range o.exclude {
		if fsutil.SamePath(ex, path) {
			return false
		}
	}
	return true
}

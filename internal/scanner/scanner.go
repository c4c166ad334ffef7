// Package scanner walks a front-end source tree and produces the FileEntry
// records the convention checker consumes: each file is classified by its
// path and, for JS/TS modules, its exports are extracted.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/modu-ai/namelint/pkg/models"
)

// Sentinel errors for the scanner package.
var (
	// ErrInvalidRoot indicates a scan root does not exist or cannot be read.
	ErrInvalidRoot = errors.New("scanner: invalid scan root")

	// ErrInvalidPattern indicates an ignore pattern does not compile.
	ErrInvalidPattern = errors.New("scanner: invalid ignore pattern")
)

const (
	// DefaultConcurrency bounds the number of files parsed at once.
	DefaultConcurrency = 8

	// maxParseSize skips bundles and generated files.
	maxParseSize = 2 << 20
)

// skipDirs lists directories never descended into.
var skipDirs = map[string]bool{
	"node_modules":     true,
	"bower_components": true,
	"dist":             true,
	"build":            true,
	"out":              true,
	"coverage":         true,
	"vendor":           true,
	"storybook-static": true,
}

// Options configures a Scanner.
type Options struct {
	// Extensions limits the scan to these file extensions (without dot).
	// Empty means DefaultExtensions.
	Extensions []string

	// Ignore holds glob patterns matched against slash-separated paths
	// relative to the scan root. "**" crosses directories.
	Ignore []string

	// Concurrency bounds parallel file parsing. Values below 1 mean
	// DefaultConcurrency.
	Concurrency int

	// Progress, when set, is called after each file is parsed. It may be
	// called from several goroutines.
	Progress func(done, total int)

	Logger *slog.Logger
}

// Scanner produces FileEntry records from directory trees.
type Scanner struct {
	exts        []string
	ignore      []glob.Glob
	concurrency int
	progress    func(done, total int)
	logger      *slog.Logger
}

// New creates a Scanner. It fails when an ignore pattern does not compile.
func New(opts Options) (*Scanner, error) {
	s := &Scanner{
		concurrency: opts.Concurrency,
		progress:    opts.Progress,
		logger:      opts.Logger,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.concurrency < 1 {
		s.concurrency = DefaultConcurrency
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" && !slices.Contains(s.exts, e) {
			s.exts = append(s.exts, e)
		}
	}

	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
		s.ignore = append(s.ignore, g)
	}
	return s, nil
}

// candidate is a file selected by the walk, waiting to be parsed.
type candidate struct {
	root string // slash form, as given by the caller
	rel  string // slash-separated, relative to root
	abs  string // OS path used to read the file
}

// Scan walks every root and returns the entries in walk order (roots in
// the given order, lexical order within a root). Unreadable files become
// entries with a ParseError rather than failing the scan.
func (s *Scanner) Scan(ctx context.Context, roots ...string) ([]models.FileEntry, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var candidates []candidate
	for _, root := range roots {
		found, err := s.walk(ctx, root)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, found...)
	}

	entries := make([]models.FileEntry, len(candidates))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = s.entry(c)
			if s.progress != nil {
				s.progress(int(done.Add(1)), len(candidates))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan files: %w", err)
	}

	s.logger.Debug("scan finished", "roots", len(roots), "files", len(entries))
	return entries, nil
}

// walk lists the candidate files under root.
func (s *Scanner) walk(ctx context.Context, root string) ([]candidate, error) {
	cleaned := filepath.Clean(root)
	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}

	// A single file is reported relative to its directory.
	if !info.IsDir() {
		dir := filepath.Dir(cleaned)
		name := filepath.Base(cleaned)
		if !s.selected(name) {
			return nil, nil
		}
		return []candidate{{root: filepath.ToSlash(dir), rel: name, abs: cleaned}}, nil
	}

	var out []candidate
	slashRoot := filepath.ToSlash(cleaned)
	err = filepath.WalkDir(cleaned, func(p string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			s.logger.Warn("skipping unreadable path", "path", p, "error", walkErr)
			if entry != nil && entry.IsDir() && p != cleaned {
				return filepath.SkipDir
			}
			return nil
		}

		relOS, err := filepath.Rel(cleaned, p)
		if err != nil || relOS == "." {
			return nil
		}
		rel := filepath.ToSlash(relOS)
		name := entry.Name()

		if entry.IsDir() {
			if skipDirs[name] || strings.HasPrefix(name, ".") || s.ignored(rel) || s.ignored(rel+"/") {
				s.logger.Debug("skipping directory", "path", rel)
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || !entry.Type().IsRegular() {
			return nil
		}
		if !s.selected(name) || s.ignored(rel) {
			return nil
		}
		out = append(out, candidate{root: slashRoot, rel: rel, abs: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return out, nil
}

func (s *Scanner) selected(name string) bool {
	return slices.Contains(s.exts, extOf(name))
}

func (s *Scanner) ignored(rel string) bool {
	for _, g := range s.ignore {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// entry builds the FileEntry of one candidate.
func (s *Scanner) entry(c candidate) models.FileEntry {
	e := models.FileEntry{
		Root: c.root,
		Path: c.rel,
		Kind: Classify(c.rel),
	}
	if !e.Kind.IsSource() {
		return e
	}

	ext := extOf(c.rel)
	if !isSourceExt(ext) {
		return e
	}

	info, err := os.Stat(c.abs)
	if err != nil {
		e.ParseError = err.Error()
		return e
	}
	if info.Size() > maxParseSize {
		e.ParseError = fmt.Sprintf("file too large to parse (%d bytes)", info.Size())
		return e
	}

	src, err := os.ReadFile(c.abs)
	if err != nil {
		s.logger.Warn("failed to read file", "path", c.abs, "error", err)
		e.ParseError = err.Error()
		return e
	}

	return FromSource(e, src)
}

// FromSource fills the export data of a classified entry from module
// source. It is exported for callers that already hold file contents.
func FromSource(e models.FileEntry, src []byte) models.FileEntry {
	ext := extOf(path.Base(e.Path))
	res := parseExports(src, parseMode{
		jsx:           allowsJSX(ext),
		componentFile: e.Kind == models.KindComponent,
	})

	e.Symbols = res.Symbols
	e.ReExports = res.ReExports
	e.DefaultAggregate = res.DefaultAggregate
	if e.Kind == models.KindBarrel {
		e.Declarations = res.Declarations
	}
	if !res.SawExport {
		e.ParseError = "no exports found"
	}

	switch {
	case e.Kind == models.KindUtility && hasKind(res.Symbols, models.SymbolClass):
		e.Kind = models.KindClass
	case e.Kind == models.KindUtility && res.HasJSX && hasKind(res.Symbols, models.SymbolComponent):
		e.Kind = models.KindComponent
	}
	return e
}

func hasKind(symbols []models.ExportedSymbol, kind models.SymbolKind) bool {
	for _, s := range symbols {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

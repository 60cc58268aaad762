// Package driver wires the front-end passes (lexer, parser, typer, arc,
// arccache) into the whole-file and whole-directory operations cmd/ori's
// subcommands call, the way the teacher's internal/driver sits between
// cmd/surge and the individual phase packages.
package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/lexer"
	"ori/internal/source"
	"ori/internal/token"
)

// SourceExt is the file extension of an Ori source file.
const SourceExt = ".ori"

// TokenizeResult is everything one Tokenize call produces.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *intern.Interner
	Tokens   *token.List
	Comments []lexer.Comment
	Bag      *diag.Bag
}

// Tokenize lexes a single file, grounded on the teacher's driver.Tokenize:
// load into a fresh FileSet, lex with a bag-backed reporter, return every
// token plus the comment side-channel.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	interner := intern.New()
	bag := diag.NewBag(maxDiagnostics)
	tokens, comments := lexer.LexWithComments(file, interner, lexer.Options{
		Reporter:        diag.BagReporter{Bag: bag},
		CollectComments: true,
	})

	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Interner: interner,
		Tokens:   tokens,
		Comments: comments,
		Bag:      bag,
	}, nil
}

// TokenizeDirResult is one file's outcome within a TokenizeDir run.
type TokenizeDirResult struct {
	Path     string
	FileID   source.FileID
	Interner *intern.Interner
	Tokens   *token.List
	Comments []lexer.Comment
	Bag      *diag.Bag
}

// TokenizeDir lexes every .ori file under dir concurrently, jobs workers at
// a time (GOMAXPROCS if jobs <= 0), mirroring the teacher's parallel.go
// worker-pool shape but built on errgroup instead of a hand-rolled
// channel/WaitGroup pair.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics int, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fs := source.NewFileSetWithBase(dir)
	fileIDs := make([]source.FileID, len(files))
	for i, p := range files {
		id, err := fs.Load(p)
		if err != nil {
			return nil, nil, err
		}
		fileIDs[i] = id
	}

	results := make([]TokenizeDirResult, len(files))
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file := fs.Get(fileIDs[i])
			interner := intern.New()
			bag := diag.NewBag(maxDiagnostics)
			tokens, comments := lexer.LexWithComments(file, interner, lexer.Options{
				Reporter:        diag.BagReporter{Bag: bag},
				CollectComments: true,
			})
			results[i] = TokenizeDirResult{
				Path:     files[i],
				FileID:   fileIDs[i],
				Interner: interner,
				Tokens:   tokens,
				Comments: comments,
				Bag:      bag,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fs, results, nil
}

// ListSourceFiles recursively collects every .ori file under dir (or
// returns {dir} if dir is itself a file), sorted for determinism.
func ListSourceFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{dir}, nil
	}
	var files []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

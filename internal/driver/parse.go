package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/lexer"
	"ori/internal/parser"
	"ori/internal/source"
)

// ParseResult is everything one Parse call produces.
type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *intern.Interner
	Arena    *ast.ExprArena
	Module   ast.Module
	Comments []lexer.Comment
	Bag      *diag.Bag
}

// Parse lexes and parses a single file, grounded on the teacher's
// driver.Parse: fresh FileSet/lexer/parser chained through one bag-backed
// reporter, adapted to this compiler's arena-based ast.Module in place of
// the teacher's ast.Builder/ast.File.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	interner := intern.New()
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	tokens, comments := lexer.LexWithComments(file, interner, lexer.Options{
		Reporter:        reporter,
		CollectComments: true,
	})

	arena := ast.NewExprArena()
	result := parser.Parse(tokens, interner, arena, parser.Options{Reporter: reporter})

	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Interner: interner,
		Arena:    arena,
		Module:   result.Module,
		Comments: comments,
		Bag:      bag,
	}, nil
}

// ParseDirResult is one file's outcome within a ParseDir run.
type ParseDirResult struct {
	Path     string
	FileID   source.FileID
	Interner *intern.Interner
	Arena    *ast.ExprArena
	Module   ast.Module
	Comments []lexer.Comment
	Bag      *diag.Bag
}

// ParseDir parses every .ori file under dir concurrently, the same
// worker-pool shape as TokenizeDir.
func ParseDir(ctx context.Context, dir string, maxDiagnostics int, jobs int) (*source.FileSet, []ParseDirResult, error) {
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

	results := make([]ParseDirResult, len(files))
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
			reporter := diag.BagReporter{Bag: bag}

			tokens, comments := lexer.LexWithComments(file, interner, lexer.Options{
				Reporter:        reporter,
				CollectComments: true,
			})
			arena := ast.NewExprArena()
			res := parser.Parse(tokens, interner, arena, parser.Options{Reporter: reporter})

			results[i] = ParseDirResult{
				Path:     files[i],
				FileID:   fileIDs[i],
				Interner: interner,
				Arena:    arena,
				Module:   res.Module,
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

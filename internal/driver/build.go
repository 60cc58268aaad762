package driver

import (
	"ori/internal/arc"
	"ori/internal/arccache"
	"ori/internal/ast"
	"ori/internal/diag"
	"ori/internal/intern"
	"ori/internal/lexer"
	"ori/internal/parser"
	"ori/internal/source"
	"ori/internal/typeinfo"
	"ori/internal/typer"
	"ori/internal/types"
)

// BuildOptions configures a Build run.
type BuildOptions struct {
	MaxDiagnostics int
	// CacheDir, if non-empty, is the ArcIrCache root Build opens and
	// populates (mirroring the project manifest's cache_dir, §6). An
	// empty CacheDir skips caching - Build still type-checks and lowers
	// to ARC, it just has nowhere to persist the result.
	CacheDir string
	// Stages, if non-nil, receives one stage name as Build enters it
	// ("lex", "parse", "typecheck", "arc", "cache"), for a caller driving
	// a progress display (the `build --watch` TUI). Build sends on a
	// best-effort basis and never blocks: a full channel just means the
	// display missed a frame, which must never stall compilation.
	Stages chan<- string
}

func (o BuildOptions) sendStage(name string) {
	if o.Stages == nil {
		return
	}
	select {
	case o.Stages <- name:
	default:
	}
}

// BuildResult is everything one Build call produces.
type BuildResult struct {
	FileSet    *source.FileSet
	Bag        *diag.Bag
	Functions  []arc.Function
	CacheHits  int
	CacheStore int
}

// Build runs the full front-end-through-ARC pipeline over a single file:
// lex, parse, type-check (C9), lower every function to ARC IR (C10), and
// store each result in the on-disk ArcIrCache (C11) when one is
// configured. It stops before typer.Check if lexing/parsing already
// produced errors, and before arc.Build if type-checking did, the same
// fail-fast staging the teacher's driver.DiagnoseWithOptions uses between
// its tokenize/syntax/sema stages.
func Build(filePath string, opts BuildOptions) (*BuildResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	interner := intern.New()
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	opts.sendStage("lex")
	tokens, _ := lexer.LexWithComments(file, interner, lexer.Options{Reporter: reporter})

	opts.sendStage("parse")
	arena := ast.NewExprArena()
	parseRes := parser.Parse(tokens, interner, arena, parser.Options{Reporter: reporter})

	result := &BuildResult{FileSet: fs, Bag: bag}
	if bag.HasErrors() {
		return result, nil
	}

	opts.sendStage("typecheck")
	pool := types.NewPool()
	typerRes := typer.Check(parseRes.Module, arena, pool, interner, typer.Options{Reporter: reporter})
	if bag.HasErrors() {
		return result, nil
	}

	opts.sendStage("arc")
	info := typeinfo.NewStore(pool, reporter)
	functions := arc.Build(parseRes.Module, arena, info, typerRes)
	result.Functions = functions

	if opts.CacheDir == "" {
		return result, nil
	}

	opts.sendStage("cache")
	cache, err := arccache.Open(opts.CacheDir)
	if err != nil {
		return result, err
	}
	for _, fn := range functions {
		if cache.Has(fn.ContentHash) {
			result.CacheHits++
			continue
		}
		if err := cache.Put(interner, fn); err != nil {
			return result, err
		}
		result.CacheStore++
	}
	return result, nil
}

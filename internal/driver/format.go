package driver

import (
	"context"
	"errors"
	"os"

	"ori/internal/format"
)

// FormatOptions configures a FormatPaths run.
type FormatOptions struct {
	Check   bool
	Options format.Options
	Stdout  bool
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats every .ori file named directly or found recursively
// under paths, grounded on the teacher's driver.FormatPaths: opts.Check
// leaves files untouched and only reports whether formatting would
// change them; opts.Stdout returns formatted content without writing it.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var files []string
	for _, p := range paths {
		found, err := ListSourceFiles(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := FormatResult{Path: path}
		formatted, changed, err := formatSingleFile(path, opts)
		if err != nil {
			result.Err = err
			results = append(results, result)
			continue
		}

		switch {
		case opts.Check:
			result.Changed = changed
		case opts.Stdout:
			result.Formatted = formatted
			result.Changed = changed
		case changed:
			mode := os.FileMode(0o644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode()
			}
			if writeErr := os.WriteFile(path, formatted, mode.Perm()); writeErr != nil {
				result.Err = writeErr
			} else {
				result.Changed = true
			}
		}
		results = append(results, result)
	}

	return results, nil
}

func formatSingleFile(path string, opts FormatOptions) (formatted []byte, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	formatted, err = format.Format(data, opts.Options)
	if err != nil {
		return nil, false, err
	}
	return formatted, string(formatted) != string(data), nil
}

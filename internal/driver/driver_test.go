package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ori/internal/driver"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTokenizeSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.ori", "@main() = 1;\n")

	result, err := driver.Tokenize(path, 100)
	require.NoError(t, err)
	require.False(t, result.Bag.HasErrors())
	require.Greater(t, result.Tokens.Len(), 0)
}

func TestTokenizeDirCollectsEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.ori", "@main() = 1;\n")
	writeSource(t, dir, "b.ori", "@helper() = 2;\n")
	writeSource(t, dir, "skip.txt", "not ori source")

	_, results, err := driver.TokenizeDir(context.Background(), dir, 100, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.False(t, r.Bag.HasErrors(), "unexpected diagnostics for %s", r.Path)
	}
}

func TestListSourceFilesSortsAndFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "z.ori", "@main() = 1;\n")
	writeSource(t, dir, "a.ori", "@main() = 1;\n")
	writeSource(t, dir, "ignore.md", "not source")

	files, err := driver.ListSourceFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, filepath.Join(dir, "a.ori"), files[0])
	require.Equal(t, filepath.Join(dir, "z.ori"), files[1])
}

func TestParseSingleFileReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "broken.ori", "@main( = 1;\n")

	result, err := driver.Parse(path, 100)
	require.NoError(t, err)
	require.True(t, result.Bag.HasErrors(), "expected a syntax error for unbalanced parens")
}

func TestBuildLowersToArcAndPopulatesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "ok.ori", "@main() = 1 + 2;\n")
	cacheDir := filepath.Join(dir, ".ori-cache")

	result, err := driver.Build(path, driver.BuildOptions{
		MaxDiagnostics: 100,
		CacheDir:       cacheDir,
	})
	require.NoError(t, err)
	require.False(t, result.Bag.HasErrors())
	require.Len(t, result.Functions, 1)
	require.Equal(t, 1, result.CacheStore)
	require.Equal(t, 0, result.CacheHits)

	// Rebuilding the same source should hit the cache instead of storing again.
	second, err := driver.Build(path, driver.BuildOptions{
		MaxDiagnostics: 100,
		CacheDir:       cacheDir,
	})
	require.NoError(t, err)
	require.Equal(t, 0, second.CacheStore)
	require.Equal(t, 1, second.CacheHits)
}

func TestBuildSendsStageEventsWithoutBlocking(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "ok.ori", "@main() = 1;\n")

	stages := make(chan string, 8)
	done := make(chan struct{})
	var seen []string
	go func() {
		for s := range stages {
			seen = append(seen, s)
		}
		close(done)
	}()

	_, err := driver.Build(path, driver.BuildOptions{MaxDiagnostics: 100, Stages: stages})
	require.NoError(t, err)
	close(stages)
	<-done

	require.Contains(t, seen, "lex")
	require.Contains(t, seen, "parse")
	require.Contains(t, seen, "typecheck")
	require.Contains(t, seen, "arc")
}

func TestInspectAndClearCache(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "ok.ori", "@main() = 1;\n")
	cacheDir := filepath.Join(dir, ".ori-cache")

	_, err := driver.Build(path, driver.BuildOptions{MaxDiagnostics: 100, CacheDir: cacheDir})
	require.NoError(t, err)

	stats, err := driver.InspectCache(cacheDir)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Entries)

	require.NoError(t, driver.ClearCache(cacheDir))

	stats, err = driver.InspectCache(cacheDir)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Entries)
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ori/internal/diagfmt"
	"ori/internal/driver"
	"ori/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <file.ori>",
	Short: "Type-check a file and lower it to ARC IR",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("cache-dir", "", "ArcIrCache directory (defaults to the project manifest's cache_dir, or .ori-cache)")
	buildCmd.Flags().Bool("watch", false, "show a live progress view while building")
}

func runBuild(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return err
	}
	if cacheDir == "" {
		cacheDir = resolveCacheDir(filePath)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}

	opts := driver.BuildOptions{MaxDiagnostics: maxDiagnostics, CacheDir: cacheDir}

	var result *driver.BuildResult
	if watch {
		result, err = runBuildWatched(cmd, filePath, opts)
	} else {
		result, err = driver.Build(filePath, opts)
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: colorEnabled(cmd), Context: 2})
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("build: %s has errors", filePath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "built %s: %d function(s), %d cached, %d stored\n",
		filePath, len(result.Functions), result.CacheHits, result.CacheStore)
	return nil
}

func runBuildWatched(cmd *cobra.Command, filePath string, opts driver.BuildOptions) (*driver.BuildResult, error) {
	stages := make(chan string, 8)
	opts.Stages = stages

	type buildOutcome struct {
		result *driver.BuildResult
		err    error
	}
	done := make(chan buildOutcome, 1)
	go func() {
		result, err := driver.Build(filePath, opts)
		close(stages)
		done <- buildOutcome{result, err}
	}()

	model := newWatchModel(filePath, stages)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return nil, err
	}

	outcome := <-done
	return outcome.result, outcome.err
}

// resolveCacheDir walks up from filePath's directory looking for an
// ori.toml. When one is found it uses the manifest's cache_dir (a
// relative path is taken from the project root), or .ori-cache in the
// project root when cache_dir is unset; with no project root it falls
// back to .ori-cache next to the file, per §6.
func resolveCacheDir(filePath string) string {
	dir := filepath.Dir(filePath)
	root, ok, err := project.FindProjectRoot(dir)
	if err == nil && ok {
		manifestPath := filepath.Join(root, project.ManifestFileName)
		if m, err := project.LoadManifest(manifestPath); err == nil && m.CacheDir != "" {
			if filepath.IsAbs(m.CacheDir) {
				return m.CacheDir
			}
			return filepath.Join(root, m.CacheDir)
		}
		return filepath.Join(root, ".ori-cache")
	}
	return filepath.Join(dir, ".ori-cache")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ori/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the on-disk ArcIrCache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status [flags]",
	Short: "Show ArcIrCache entry count and size",
	Args:  cobra.NoArgs,
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [flags]",
	Short: "Delete every cached ARC IR entry",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.PersistentFlags().String("dir", ".ori-cache", "ArcIrCache root directory")
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	stats, err := driver.InspectCache(dir)
	if err != nil {
		return fmt.Errorf("cache status: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d bytes\n", stats.Dir, stats.Entries, stats.SizeBytes)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	if err := driver.ClearCache(dir); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", dir)
	return nil
}

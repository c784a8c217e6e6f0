package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suyamoonpathak/CS661-Project-Climate-Change-and-its-Effects/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the dataset, layout and chart cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached dataset, layout and chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCache(cmd.Context(), false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()

			count, err := clearCache(cmd, store)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", c.cacheBackend())
			return nil
		},
	}
}

// clearCache empties store. Backends that keep nothing, such as the null
// cache, report zero entries.
func clearCache(cmd *cobra.Command, store cache.Cache) (int, error) {
	cl, ok := store.(cache.Clearer)
	if !ok {
		return 0, nil
	}
	n, err := cl.Clear(cmd.Context())
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return n, nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir := c.config.Cache.Dir; dir != "" {
				fmt.Fprintln(c.Out, dir)
				return nil
			}
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.Out, dir)
			return nil
		},
	}
}

func (c *CLI) cacheBackend() string {
	switch b := c.config.Cache.Backend; b {
	case "", cache.BackendFile:
		return cache.BackendFile
	default:
		return b
	}
}

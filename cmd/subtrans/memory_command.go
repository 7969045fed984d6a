package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paiphyo4f20/Subtitles/internal/service"
)

func newMemoryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Manage the translation memory",
	}
	cmd.AddCommand(newMemoryClearCommand(a))
	return cmd
}

func newMemoryClearCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry from the translation memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Clear all %d translation memory entries? (y/n): ", store.Len())
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			store.Clear()
			if err := store.Save(); err != nil {
				return service.WrapError(err, service.ErrFileWrite, "failed to persist cleared memory").
					WithContext("store", store.Path())
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Memory cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

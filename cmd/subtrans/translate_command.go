package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paiphyo4f20/Subtitles/internal/provider"
	"github.com/paiphyo4f20/Subtitles/internal/service"
)

func newTranslateCommand(a *app) *cobra.Command {
	var (
		output      string
		reviewFlag  bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "translate <input.srt>",
		Short: "Auto-translate a subtitle file, optionally review, and export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Provider.APIKey == "" {
				return service.NewError(service.ErrConfig, "OPENAI_API_KEY is required to translate")
			}

			store, err := a.loadStore()
			if err != nil {
				return err
			}

			backend, err := provider.NewOpenAITranslator(provider.Config{
				APIKey: a.cfg.Provider.APIKey,
				APIURL: a.cfg.Provider.APIURL,
				Model:  a.cfg.Provider.Model,
			})
			if err != nil {
				return service.WrapError(err, service.ErrConfig, "failed to create translation provider")
			}

			if concurrency > 0 {
				a.cfg.Translate.Concurrency = concurrency
			}

			workflow := service.NewWorkflow(*a.cfg, provider.NewBreakerTranslator(backend), store)
			result, err := workflow.Run(cmd.Context(), service.RunOptions{
				InputPath:  args[0],
				OutputPath: output,
				Review:     reviewFlag,
				ReviewIn:   cmd.InOrStdin(),
				ReviewOut:  cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", result.OutputPath)
			fmt.Fprintln(cmd.OutOrStdout(), renderStatistics(result.Stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: translated.srt next to the input)")
	cmd.Flags().BoolVarP(&reviewFlag, "review", "r", false, "review translations interactively before export")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "parallel provider calls (default from TRANSLATE_CONCURRENCY)")

	return cmd
}

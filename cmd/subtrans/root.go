package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paiphyo4f20/Subtitles/internal/config"
	"github.com/paiphyo4f20/Subtitles/internal/memory"
	"github.com/paiphyo4f20/Subtitles/internal/service"
	"github.com/paiphyo4f20/Subtitles/pkg/log"
)

// app carries state shared by the subcommands after root setup.
type app struct {
	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "subtrans",
		Short:         "Translate SRT subtitle files with a persistent translation memory",
		Long:          "subtrans translates SRT subtitle files (English to Myanmar by default), caches every translation in a reusable translation memory, and supports interactive review of the results.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine, the environment may be set directly.
		_ = godotenv.Load()

		cfg, err := config.NewFromEnv()
		if err != nil {
			return service.WrapError(err, service.ErrConfig, "invalid configuration")
		}
		a.cfg = cfg

		log.InitLogger(log.ParseLevel(cfg.System.LogLevel))
		return nil
	}

	cmd.AddCommand(
		newTranslateCommand(a),
		newStatsCommand(a),
		newMemoryCommand(a),
	)

	return cmd
}

// loadStore opens the translation memory for the configured language pair.
// A corrupt store aborts with advice; the operator decides whether to fix
// or delete the file.
func (a *app) loadStore() (*memory.Store, error) {
	path := memory.FilePath(
		a.cfg.Memory.Dir,
		a.cfg.Translate.SourceLanguage.String(),
		a.cfg.Translate.TargetLanguage.String(),
	)

	store, err := memory.Load(path)
	if err != nil {
		return nil, service.WrapError(err, service.ErrCorruptStore, "failed to load translation memory").
			WithContext("store", path)
	}
	return store, nil
}

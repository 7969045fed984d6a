package main

import (
	"os"

	"github.com/paiphyo4f20/Subtitles/internal/service"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		service.Handle(err)
		os.Exit(1)
	}
}

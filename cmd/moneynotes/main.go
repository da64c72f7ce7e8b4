package main

import (
	"os"

	"github.com/Markwang0203/Money-Notes-App/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/scrollbar"
)

// Init implements the 'scrollbar init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", scrollbar.DefaultConfigFile, "Config file to create")
	style := fs.String("style", "classic", "Scrollbar style (classic or modern)")
	library := fs.String("haptics", "", "Shared library exporting the haptic pulse function")
	force := fs.Bool("force", false, "Overwrite an existing config file")
	fs.Parse(args)

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *path)
	}

	config := scrollbar.DefaultConfig()
	if err := config.ScrollBar.Style.UnmarshalText([]byte(*style)); err != nil {
		return err
	}
	config.Haptics.Library = *library

	if err := scrollbar.SaveConfig(*path, config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", *path)
	return nil
}

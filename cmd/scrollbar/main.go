package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/scrollbar/cmd/scrollbar/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "demo":
		err = commands.Demo(args)
	case "init":
		err = commands.Init(args)
	case "metrics":
		err = commands.Metrics(args)
	case "version", "-v", "--version":
		fmt.Printf("scrollbar version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scrollbar - draggable scrollbar overlay

Usage: scrollbar <command> [options]

Commands:
  demo      Run the interactive terminal demo
  init      Write a default scrollbar.toml
  metrics   Print style metrics and the frames for a given surface
  version   Print version information
  help      Show this help message

Examples:
  scrollbar init --style modern               Create scrollbar.toml for the modern style
  scrollbar demo --rows 500                   Scroll through 500 rows
  scrollbar metrics --height 600 --offset 900 Show frames 900pt down the content

Controls (demo):
  drag the bar or click the track to scroll
  wheel, arrows, PgUp/PgDn scroll the list
  Home/End animate to the top or bottom
  q, Esc or Ctrl-C quit`)
}

// Package main provides the CLI for laying out and inspecting stack scenes.
//
// Usage:
//
//	stack layout [-w N] [-h N] [-json] file...   Print computed bounds
//	stack draw [-w N] [-h N] file                Draw the laid-out scene as text
//	stack view [-watch] [-log path] file         Interactive terminal viewer
//	stack help                                   Show help
//
// Scene files are TOML (.toml) or YAML (.yaml, .yml).
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `stack - linear stack layout for terminal scenes

Usage:
  stack <command> [options] file...

Commands:
  layout      Print the bounds of every node in one or more scenes
  draw        Draw a scene as text
  view        Show a scene in the terminal
  version     Print version information
  help        Show this help message

Options:
  -w N        Width to lay out to (layout, draw)
  -h N        Height to lay out to (layout, draw)
  -json       Print bounds as JSON (layout)
  -watch      Reload when the file changes (view)
  -log path   Append debug logs to path (view)

Examples:
  stack layout frame.toml                 One "path x y width height" line per node
  stack layout -json a.toml b.yaml        Bounds for several scenes as JSON
  stack draw -w 40 -h 12 frame.toml       Draw at a fixed size
  stack view -watch frame.yaml            Redraw on every save
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "layout":
		if err := runLayout(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "draw":
		if err := runDraw(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "view":
		if err := runView(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("stack version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

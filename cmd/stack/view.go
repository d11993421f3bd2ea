package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	stack "github.com/grindlemire/go-stack"
	"github.com/grindlemire/go-stack/internal/debug"
	"github.com/grindlemire/go-stack/internal/view"
	"github.com/grindlemire/go-stack/internal/watch"
)

// runView implements the view subcommand.
func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	watchFile := fs.Bool("watch", false, "reload when the file changes")
	logPath := fs.String("log", "", "path to append debug logs to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("view takes exactly one scene file")
	}
	path := fs.Arg(0)

	if *logPath != "" {
		if err := debug.Init(*logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	// Fail before taking over the terminal if the scene is broken.
	if _, _, err := loadScene(path); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	v := view.New(screen, func() (*stack.Node, error) {
		_, root, err := loadScene(path)
		return root, err
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return v.Run(ctx)
	})
	if *watchFile {
		g.Go(func() error {
			return watch.File(ctx, path, v.Reload)
		})
	}
	return g.Wait()
}

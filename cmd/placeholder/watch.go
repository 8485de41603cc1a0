package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/rawdoc"
	"github.com/dshills/placeholder/internal/render"
	"github.com/dshills/placeholder/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		values string
		tui    bool
		rf     renderFlags
	)
	cmd := &cobra.Command{
		Use:   "watch DOCUMENT",
		Short: "Re-render whenever the document, values file or script changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := watcher.New(
				watcher.WithDebounce(time.Duration(a.cfg.Watch.Debounce)),
				watcher.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			defer w.Close()

			for _, p := range []string{args[0], values, a.scriptPath} {
				if p == "" {
					continue
				}
				if err := w.Add(p); err != nil {
					return fmt.Errorf("watch %s: %w", p, err)
				}
			}

			var show func(doc *document.Document) error
			ctx := cmd.Context()
			if tui {
				screen, err := openScreen()
				if err != nil {
					return err
				}
				defer screen.Fini()

				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				defer cancel()
				go pollQuit(screen, cancel)

				s, err := render.NewScreen(screen, a.cfg.Render.Highlight)
				if err != nil {
					return err
				}
				show = func(doc *document.Document) error {
					s.Draw(doc)
					return nil
				}
			} else {
				r, err := a.renderer(cmd, &rf)
				if err != nil {
					return err
				}
				show = func(doc *document.Document) error {
					out, err := r.Render(doc)
					if err != nil {
						return err
					}
					return writeOutput(cmd, out)
				}
			}

			var last string
			step := func() {
				e, err := a.loadEngine(ctx, args[0], values)
				if err != nil {
					a.logger.Error("reload failed", "error", err)
					return
				}
				fp, err := rawdoc.Fingerprint(e.Document())
				if err != nil {
					a.logger.Error("fingerprint failed", "error", err)
					return
				}
				if fp == last {
					a.logger.Debug("output unchanged", "fingerprint", fp)
					return
				}
				last = fp
				if err := show(e.Document()); err != nil {
					a.logger.Error("render failed", "error", err)
				}
			}

			step()
			err = w.Run(ctx, func(c watcher.Change) {
				a.logger.Debug("files changed", "paths", c.Paths)
				step()
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&values, "values", "v", "", "Placeholder values file (YAML or JSON)")
	cmd.Flags().BoolVar(&tui, "tui", false, "Draw a live preview in the terminal (q or Esc quits)")
	rf.register(cmd)
	return cmd
}

func openScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// pollQuit cancels when the user presses q, Esc or Ctrl-C.
func pollQuit(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		}
	}
}

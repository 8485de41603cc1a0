package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/placeholder/internal/engine/document"
	"github.com/dshills/placeholder/internal/engine/selection"
	"github.com/dshills/placeholder/internal/placeholder"
	"github.com/dshills/placeholder/internal/rawdoc"
)

// =============================================================================
// RENDER
// =============================================================================

func newRenderCmd(a *app) *cobra.Command {
	var (
		values string
		rf     renderFlags
	)
	cmd := &cobra.Command{
		Use:   "render DOCUMENT",
		Short: "Substitute placeholder values and print the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd, &rf)
			if err != nil {
				return err
			}
			e, err := a.loadEngine(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}
			out, err := r.Render(e.Document())
			if err != nil {
				return err
			}
			return writeOutput(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&values, "values", "v", "", "Placeholder values file (YAML or JSON)")
	rf.register(cmd)
	return cmd
}

// =============================================================================
// DISCOVER
// =============================================================================

func newDiscoverCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discover DOCUMENT",
		Short: "List the placeholders found in a document as a values file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := rawdoc.ReadFile(args[0])
			if err != nil {
				return err
			}
			found, err := placeholder.Discover(doc)
			if err != nil {
				return err
			}
			a.logger.Debug("discovered placeholders", "count", len(found))
			return writeValues(cmd, found)
		},
	}
}

// =============================================================================
// RECONCILE
// =============================================================================

func newReconcileCmd(a *app) *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:   "reconcile DOCUMENT",
		Short: "Merge the placeholders found in a document into a values file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, list, err := loadInputs(args[0], values)
			if err != nil {
				return err
			}
			merged, err := placeholder.Reconcile(doc, list.Items())
			if err != nil {
				return err
			}
			a.logger.Debug("reconciled placeholders", "canonical", list.Len(), "merged", len(merged))
			return writeValues(cmd, merged)
		},
	}
	cmd.Flags().StringVarP(&values, "values", "v", "", "Canonical values file (YAML or JSON)")
	return cmd
}

func writeValues(cmd *cobra.Command, items []placeholder.Placeholder) error {
	list, err := placeholder.NewList(items...)
	if err != nil {
		return err
	}
	data, err := rawdoc.EncodeValues(list)
	if err != nil {
		return err
	}
	return writeOutput(cmd, string(data))
}

// =============================================================================
// REMOVE
// =============================================================================

func newRemoveCmd(a *app) *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "remove DOCUMENT NAME",
		Short: "Detach every placeholder called NAME, keeping its text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd, &rf)
			if err != nil {
				return err
			}
			doc, err := rawdoc.ReadFile(args[0])
			if err != nil {
				return err
			}
			nd, err := placeholder.RemoveByName(doc, args[1])
			if err != nil {
				return err
			}
			if nd == doc {
				a.logger.Info("no placeholder removed", "name", args[1])
			}
			out, err := r.Render(nd)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out)
		},
	}
	rf.register(cmd)
	return cmd
}

// =============================================================================
// APPLY
// =============================================================================

func newApplyCmd(a *app) *cobra.Command {
	var (
		values string
		block  string
		anchor int
		head   int
		rf     renderFlags
	)
	cmd := &cobra.Command{
		Use:   "apply DOCUMENT NAME VALUE",
		Short: "Turn a selection into a placeholder and substitute",
		Long: "apply selects [anchor, head) in the given block (or places a cursor when\n" +
			"anchor equals head), attaches placeholder NAME with VALUE there, and prints\n" +
			"the substituted document. Offsets count characters.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd, &rf)
			if err != nil {
				return err
			}
			e, err := a.loadEngine(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}

			key := document.Key(block)
			if key == "" {
				first := e.Document().FirstBlock()
				if first == nil {
					return fmt.Errorf("%w: document has no blocks", selection.ErrInvalidSelection)
				}
				key = first.Key()
			}
			if !cmd.Flags().Changed("head") {
				head = anchor
			}
			if err := e.SetSelection(selection.New(key, anchor, head)); err != nil {
				return err
			}
			if err := e.Apply(args[1], args[2]); err != nil {
				return err
			}

			out, err := r.Render(e.Document())
			if err != nil {
				return err
			}
			return writeOutput(cmd, out)
		},
	}
	cmd.Flags().StringVarP(&values, "values", "v", "", "Placeholder values file (YAML or JSON)")
	cmd.Flags().StringVar(&block, "block", "", "Block key (default: first block)")
	cmd.Flags().IntVar(&anchor, "anchor", 0, "Selection anchor offset")
	cmd.Flags().IntVar(&head, "head", 0, "Selection head offset (default: anchor)")
	rf.register(cmd)
	return cmd
}

// =============================================================================
// FINGERPRINT
// =============================================================================

func newFingerprintCmd(a *app) *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:   "fingerprint DOCUMENT",
		Short: "Print the BLAKE3 fingerprint of the substituted document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadEngine(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}
			fp, err := rawdoc.Fingerprint(e.Document())
			if err != nil {
				return err
			}
			return writeOutput(cmd, fp)
		},
	}
	cmd.Flags().StringVarP(&values, "values", "v", "", "Placeholder values file (YAML or JSON)")
	return cmd
}

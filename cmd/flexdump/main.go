// Command flexdump lays out a fixture document and prints the resulting
// geometry, one box per line. With --png it also paints the tree to an
// image, and with expectations present in the fixture it verifies them.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/flexkit/fixture"
	"github.com/chrisuehlinger/flexkit/layout"
	"github.com/chrisuehlinger/flexkit/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		verbose bool
		pngPath string
	)

	root := &cobra.Command{
		Use:   "flexdump <fixture.toml>",
		Short: "Lay out a flex fixture and dump the resulting geometry",
		Long: `Flexdump reads a TOML fixture describing a flex box tree, runs the
layout engine over it and prints the computed geometry as an indented tree.
Fixtures may carry [[expect]] tables; when present they are checked and a
mismatch fails the run.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.WarnLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return dump(logger, args[0], pngPath)
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVar(&pngPath, "png", "", "paint the laid-out tree to this PNG file")

	return root.Execute()
}

func dump(logger *log.Logger, path, pngPath string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}
	tr, root, err := doc.Build()
	if err != nil {
		return err
	}

	// Place the root's border box at the canvas origin.
	rb := tr.Box(root)
	rb.Dimensions.Content.X = rb.Style.Border.Left + rb.Style.Padding.Left
	rb.Dimensions.Content.Y = rb.Style.Border.Top + rb.Style.Padding.Top

	ctx := layout.NewContext()
	ctx.Logger = logger
	layout.LayoutFlexContainer(ctx, tr, root)

	fmt.Print(tr.Dump(root))

	if err := doc.Verify(tr, root); err != nil {
		return err
	}

	if pngPath != "" {
		border := tr.AbsoluteBorderRect(root)
		w := int(math.Ceil(border.X + border.Width))
		h := int(math.Ceil(border.Y + border.Height))
		if err := render.SavePNG(pngPath, tr, root, w, h); err != nil {
			return fmt.Errorf("paint %s: %w", pngPath, err)
		}
		logger.Info("painted layout", "path", pngPath, "size", fmt.Sprintf("%dx%d", w, h))
	}
	return nil
}

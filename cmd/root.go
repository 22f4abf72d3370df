// Package cmd implements the command line interface.
package cmd

import (
	"fmt"
	"image"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"image-interact/internal/editor"
	imgload "image-interact/internal/image"
	"image-interact/internal/render"
	"image-interact/internal/version"
	"image-interact/ui/mainwindow"
	"image-interact/ui/prefs"
)

var (
	handleSize    float64
	squareHandles bool
	noConstraints bool
	scaleWidth    float64
	areas         []string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "image-interact [image]",
	Short: "Polygon annotation tool for images",
	Long: `Image Annotator opens an image and lets you draw, adjust, and export
polygon annotations. Click to place vertices, drag handles to move them,
hold shift to snap a drag to the horizontal or vertical axis, and
middle-click to toggle between drawing and panning.`,
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	rootCmd.Flags().Float64Var(&handleSize, "handle-size", 6, "vertex handle size in image pixels at 1x zoom")
	rootCmd.Flags().BoolVar(&squareHandles, "square-handles", false, "draw square vertex handles instead of circles")
	rootCmd.Flags().BoolVar(&noConstraints, "no-constraints", false, "disable shift axis snapping while dragging")
	rootCmd.Flags().Float64Var(&scaleWidth, "scale-width", 0, "reference width legacy area coordinates were captured against")
	rootCmd.Flags().StringArrayVar(&areas, "area", nil, "legacy flat coordinate list to preload, e.g. \"10,10,50,10,30,40\" (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var background image.Image
	if len(args) == 1 {
		img, err := imgload.Load(args[0])
		if err != nil {
			return err
		}
		background = img
		logrus.WithFields(logrus.Fields{
			"path":   args[0],
			"width":  img.Bounds().Dx(),
			"height": img.Bounds().Dy(),
		}).Info("image loaded")
	}

	p := prefs.Load()

	cfg := editor.DefaultConfig()
	cfg.ScaleFromWidth = scaleWidth

	// Explicit flags win over stored preferences.
	cfg.HandleSize = handleSize
	if !cmd.Flags().Changed("handle-size") {
		cfg.HandleSize = p.FloatWithFallback("handleSize", handleSize)
	}
	cfg.ConstraintsEnabled = !noConstraints
	if !cmd.Flags().Changed("no-constraints") {
		cfg.ConstraintsEnabled = p.Bool("constraints", true)
	}
	square := squareHandles
	if !cmd.Flags().Changed("square-handles") {
		square = p.Bool("squareHandles", false)
	}
	if square {
		cfg.HandleShape = render.HandleSquare
	}

	p.SetFloat("handleSize", cfg.HandleSize)
	p.SetBool("constraints", cfg.ConstraintsEnabled)
	p.SetBool("squareHandles", square)
	if err := p.Save(); err != nil {
		logrus.WithError(err).Warn("failed to save preferences")
	}

	fyneApp := fyneapp.New()
	win := mainwindow.New(fyneApp, cfg, areas, background, p)
	win.ShowAndRun()
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	dataDir     string
	preset      string
	catalogFile string
	seed        int64

	frames     int
	ensemble   int
	fps        int
	addr       string
	outputFile string
	svgSize    int
)

// main registers the orrery commands and runs the one named on the command
// line. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "animated solar system",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "load bodies from a saved catalog instead of the API")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for the initial layout (0 picks one)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the browser view and animate",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().IntVar(&fps, "fps", 0, "frames per second (overrides config)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", 0, "frames per second (overrides config)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run frames headless and store the run",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 0, "number of frames (overrides config)")
	runCmd.Flags().IntVar(&ensemble, "ensemble", 0, "also compare metrics over this many seeds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id] [body]",
		Short: "plot x over frames for a stored run",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (stdout if empty)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a stored run's tracks, or the initial layout, as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outputFile, "output", "o", "orrery.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list bodies with display and orbit radii",
		Args:  cobra.NoArgs,
		RunE:  listBodies,
	}

	tableCmd := &cobra.Command{
		Use:   "table [body]",
		Short: "print a body's property table",
		Args:  cobra.ExactArgs(1),
		RunE:  showTable,
	}

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "fetch the catalog and save a snapshot",
		Args:  cobra.NoArgs,
		RunE:  fetchCatalog,
	}
	fetchCmd.Flags().StringVarP(&outputFile, "output", "o", "catalog.yaml", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(serveCmd, liveCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportSVGCmd,
		bodiesCmd, tableCmd, fetchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

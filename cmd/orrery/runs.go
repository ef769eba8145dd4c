package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tSEED\tBODIES\tCATALOG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Seed,
			len(run.Bodies),
			run.Catalog,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	tracks, err := st.LoadTracks(runID)
	if err != nil {
		return err
	}

	names := meta.Bodies
	if len(args) == 2 {
		if _, ok := tracks[args[1]]; !ok {
			return fmt.Errorf("run %s has no body %q", runID, args[1])
		}
		names = []string{args[1]}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", meta.Frames)

	for _, name := range names {
		track := tracks[name]
		if len(track) == 0 {
			continue
		}
		data := make([]float64, len(track))
		for i, p := range track {
			data[i] = p.X
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" x vs frame"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := storage.ExportJSON(w, *meta, result); err != nil {
		return err
	}
	if outputFile != "" {
		fmt.Fprintf(os.Stderr, "exported to %s\n", outputFile)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	var svg string

	if len(args) == 1 {
		tracks, err := storage.New(dataDir).LoadTracks(args[0])
		if err != nil {
			return err
		}
		svg = export.TracksSVG(tracks, svgSize)
	} else {
		s, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		svg = export.OrbitsSVG(s.state, s.offset(), svgSize)
	}

	if svg == "" {
		return fmt.Errorf("nothing to draw")
	}
	if err := os.WriteFile(outputFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outputFile)
	return nil
}

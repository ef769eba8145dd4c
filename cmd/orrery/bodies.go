package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/present"
)

func presentScene(s *session) present.Scene {
	return present.NewScene(s.bodies, s.state.MajorRadii, s.offset())
}

func listBodies(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tRADIUS\tMAJOR\tMINOR\tSPEED")

	for _, m := range presentScene(s).Meshes {
		if m.MajorRadius == 0 {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t-\t-\t-\n", m.Name, m.Label, m.Radius)
			continue
		}
		i := indexOf(s.bodies, m.Name) - 1
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.1f\t%.2f\n",
			m.Name, m.Label, m.Radius, m.MajorRadius, orbit.MinorRadius(m.MajorRadius), s.state.Speeds[i])
	}

	return w.Flush()
}

func indexOf(bodies []catalog.Body, name string) int {
	for i, b := range bodies {
		if b.Name == name {
			return i
		}
	}
	return -1
}

func showTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bodies, _, err := loadBodies(cmd.Context(), cfg, cfg.Log.NewLogger(os.Stderr))
	if err != nil {
		return err
	}

	body, ok := catalog.Find(bodies, args[0])
	if !ok {
		return fmt.Errorf("%q: %w", args[0], catalog.ErrUnknownBody)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range present.PropertyTable(body) {
		fmt.Fprintf(w, "%s\t%s\n", row.Label, row.Text())
	}
	return w.Flush()
}

func fetchCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Catalog.APIURL == "" {
		cfg.Catalog.APIURL = config.DefaultAPIURL
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	client := catalog.NewClient(cfg.Catalog.APIURL, cfg.Catalog.Timeout, cfg.Catalog.RequestsPerSecond, logger)
	bodies, err := client.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	if err := catalog.SaveFile(outputFile, client.BaseURL(), bodies); err != nil {
		return err
	}
	fmt.Printf("saved %d bodies to %s\n", len(bodies), outputFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFPS\tSPEEDS\tCATALOG")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		speeds := make([]string, len(cfg.Sim.Speeds))
		for i, v := range cfg.Sim.Speeds {
			speeds[i] = fmt.Sprintf("%g", v)
		}
		source := cfg.Catalog.APIURL
		if cfg.Catalog.File != "" {
			source = cfg.Catalog.File
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, cfg.Sim.FPS, strings.Join(speeds, ","), source)
	}

	return w.Flush()
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tangybbq/dlb-lumatone/config"
	"github.com/tangybbq/dlb-lumatone/debug"
	"github.com/tangybbq/dlb-lumatone/hex"
	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/mapping"
	"github.com/tangybbq/dlb-lumatone/midiout"
	"github.com/tangybbq/dlb-lumatone/render"
	"github.com/tangybbq/dlb-lumatone/theme"
	"github.com/tangybbq/dlb-lumatone/tui"
	"github.com/tangybbq/dlb-lumatone/tuning"
)

func main() {
	configPath := flag.String("config", "", "job file (JSON); built-in jobs when empty")
	outDir := flag.String("out", "", "output directory (overrides the config)")
	jobName := flag.String("job", "", "run only the named job")
	preview := flag.Bool("preview", false, "show each generated board in the terminal")
	debugLog := flag.Bool("debug", false, "write a debug log")
	flag.Parse()

	if *debugLog {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}

	th := theme.New(nil)
	if cfg.Palette != "" {
		p, err := theme.LoadGPL(cfg.Palette)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		th = theme.New(p)
	}

	jobs := cfg.Jobs
	if *jobName != "" {
		job := cfg.FindJob(*jobName)
		if job == nil {
			fmt.Fprintf(os.Stderr, "Error: no job named %q\n", *jobName)
			os.Exit(1)
		}
		jobs = []config.Job{*job}
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Each combination stands alone: one bad job is reported and the
	// rest of the batch still runs.
	failed := 0
	for _, job := range jobs {
		if err := runJob(cfg.OutDir, job, th, *preview); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", job.Name, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runJob(outDir string, job config.Job, th *theme.Theme, preview bool) error {
	t, err := tuning.ByName(job.Tuning)
	if err != nil {
		return err
	}
	l, err := mapping.LayoutByName(job.Layout, t)
	if err != nil {
		return err
	}
	mode, err := mapping.ParseMode(job.Fill.Mode)
	if err != nil {
		return err
	}

	b := mapping.Builder{
		Tuning: t,
		Layout: l,
		Fill: mapping.FillInfo{
			Anchor: hex.FromOffset(job.Fill.AnchorX, job.Fill.AnchorY),
			Left:   job.Fill.Left,
			Right:  job.Fill.Right,
			Mode:   mode,
		},
		Colors:    th.KeyColor,
		FlatNames: job.FlatNames,
	}
	kb, err := b.Build()
	if err != nil {
		return err
	}
	debug.Log("build", "%s: %d keys assigned", job.Name, kb.Assigned())
	fmt.Printf("%s: %s / %s / %s, %d keys assigned\n",
		job.Name, t.Name, l.Name, mode, kb.Assigned())

	if job.Outputs.LTN {
		path := filepath.Join(outDir, job.Name+".ltn")
		if err := lumatone.SaveFile(path, kb); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", path)
	}
	if job.Outputs.SVG {
		path := filepath.Join(outDir, job.Name+".svg")
		if err := render.WriteSVGFile(path, kb); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", path)
	}
	if job.Outputs.MIDI {
		path := filepath.Join(outDir, job.Name+".mid")
		if err := midiout.WritePreview(path, kb, job.Fill.AnchorY); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", path)
	}

	if preview {
		title := fmt.Sprintf("%s (%s, %s)", job.Name, t.Name, l.Name)
		return tui.Show(title, kb)
	}
	return nil
}

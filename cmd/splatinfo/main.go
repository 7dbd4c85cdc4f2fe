package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/splatforge/gsplat"
	"github.com/splatforge/gsplat/convert"
	"github.com/splatforge/gsplat/ply"
)

func main() {
	var (
		plyFile     = flag.String("ply", "", "Path to .ply splat asset")
		validate    = flag.Bool("validate", false, "Check the asset carries every required property and exit")
		doConvert   = flag.Bool("convert", false, "Convert records and print summary statistics")
		records     = flag.Int("records", 0, "Print the first N converted records")
		workers     = flag.Int("workers", 1, "Worker goroutines for conversion")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose parser logging")
	)
	flag.Parse()

	if *plyFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: splatinfo -ply <file.ply> [-validate] [-convert] [-records N]")
		fmt.Fprintln(os.Stderr, "       splatinfo -ply <file.ply> -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		convert.SetLogger(log)
	}

	if *interactive {
		if err := runInteractive(*plyFile, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*plyFile, log, *validate, *doConvert, *records, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(plyFile string, log *zap.Logger, validate, doConvert bool, records, workers int) error {
	data, err := os.ReadFile(plyFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	p := ply.New(ply.WithLogger(log))
	md, err := p.ParseMetadata(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	fmt.Printf("Asset: %s\n", plyFile)
	fmt.Printf("Splats: %d\n", md.NumSplats)

	fmt.Printf("\nProperties:\n")
	props := make([]gsplat.Property, 0, len(md.Properties))
	for prop := range md.Properties {
		props = append(props, prop)
	}
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })
	for _, prop := range props {
		fmt.Printf("  %-12s %s\n", prop, md.Properties[prop])
	}

	ok := convert.ValidateMetadata(md)
	fmt.Printf("\nImportable: %v\n", ok)
	if validate {
		if !ok {
			os.Exit(1)
		}
		return nil
	}
	if !ok {
		return fmt.Errorf("asset is missing required properties")
	}

	if !doConvert && records == 0 {
		return nil
	}

	positions := make([]convert.Vec3, md.NumSplats)
	rotations := make([]convert.Quat, md.NumSplats)
	scales := make([]convert.Vec3, md.NumSplats)
	colors := make([]convert.RGBA, md.NumSplats)

	fn := func(i int, get gsplat.GetPropertyFn) {
		convert.Splat(i, get, positions, rotations, scales, colors)
	}
	if workers > 1 {
		err = p.ParseDataParallel(workers, fn)
	} else {
		err = p.ParseData(fn)
	}
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if doConvert {
		printStats(positions)
	}

	n := records
	if n > md.NumSplats {
		n = md.NumSplats
	}
	if n > 0 {
		fmt.Printf("\nFirst %d records:\n", n)
		styled := term.IsTerminal(int(os.Stdout.Fd()))
		for i := 0; i < n; i++ {
			fmt.Println(formatRecord(i, positions[i], rotations[i], scales[i], colors[i], styled))
		}
	}

	return nil
}

func printStats(positions []convert.Vec3) {
	if len(positions) == 0 {
		return
	}
	lo, hi := positions[0], positions[0]
	var sum [3]float64
	for _, p := range positions {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < lo[axis] {
				lo[axis] = p[axis]
			}
			if p[axis] > hi[axis] {
				hi[axis] = p[axis]
			}
			sum[axis] += float64(p[axis])
		}
	}
	n := float64(len(positions))
	fmt.Printf("\nBounds:\n")
	fmt.Printf("  min:  %.4f %.4f %.4f\n", lo[0], lo[1], lo[2])
	fmt.Printf("  max:  %.4f %.4f %.4f\n", hi[0], hi[1], hi[2])
	fmt.Printf("  mean: %.4f %.4f %.4f\n", sum[0]/n, sum[1]/n, sum[2]/n)
}

func formatRecord(i int, pos convert.Vec3, rot convert.Quat, scale convert.Vec3, color convert.RGBA, styled bool) string {
	idx := fmt.Sprintf("[%d]", i)
	if styled {
		idx = indexStyle.Render(idx)
	}
	return fmt.Sprintf("%s pos(%.4f %.4f %.4f) rot(%.4f %.4f %.4f %.4f) scale(%.4f %.4f %.4f) rgba(%d %d %d %d)",
		idx,
		pos[0], pos[1], pos[2],
		rot[0], rot[1], rot[2], rot[3],
		scale[0], scale[1], scale[2],
		color[0], color[1], color[2], color[3])
}

// fstool is a CLI utility for inspecting FreeSurfer subject files.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/brainview/internal/colormap"
	"github.com/Faultbox/brainview/pkg/freesurfer"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "regions":
		err = cmdRegions(os.Stdout, args)
	case "stats":
		err = cmdStats(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fstool - FreeSurfer file inspector

Usage:
  fstool <command> [options]

Commands:
  info <file>                   Show file type and element counts
  regions [-sort] <file.annot>  List annotation regions with vertex counts
  stats [-bins N] <file>        Summarize per-vertex values of a curv file

Examples:
  fstool info surf/lh.white
  fstool regions -sort label/lh.aparc.annot
  fstool stats -bins 20 surf/lh.thickness`)
}

// fileKind is the detected format of a subject file.
type fileKind string

const (
	kindSurface fileKind = "surface"
	kindCurv    fileKind = "curv"
	kindLabel   fileKind = "label"
	kindAnnot   fileKind = "annot"
)

var errUnknownFormat = errors.New("unrecognized file format")

// detect identifies the format by extension for the text and annotation
// formats, and by magic number for the binary ones.
func detect(path string, data []byte) (fileKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".label":
		return kindLabel, nil
	case ".annot":
		return kindAnnot, nil
	}
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xFF, 0xFE}):
		return kindSurface, nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFF, 0xFF}):
		return kindCurv, nil
	}
	return "", fmt.Errorf("%s: %w", path, errUnknownFormat)
}

func cmdInfo(w io.Writer, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: fstool info <file>")
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	kind, err := detect(path, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "File:     %s\n", path)
	fmt.Fprintf(w, "Type:     %s\n", kind)
	switch kind {
	case kindSurface:
		s, err := freesurfer.ParseSurface(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Vertices: %d\n", s.VertexCount())
		fmt.Fprintf(w, "Faces:    %d\n", s.FaceCount())
		if s.Comment != "" {
			fmt.Fprintf(w, "Comment:  %s\n", s.Comment)
		}
	case kindCurv:
		c, err := freesurfer.ParseCurv(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Vertices: %d\n", len(c.Data))
		fmt.Fprintf(w, "Faces:    %d\n", c.FaceCount)
	case kindLabel:
		l, err := freesurfer.ParseLabel(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Vertices: %d\n", l.Len())
		fmt.Fprintf(w, "Binary:   %t (%d distinct values)\n", l.IsBinary(), l.DistinctValues())
	case kindAnnot:
		a, err := freesurfer.ParseAnnot(data)
		if err != nil {
			return err
		}
		_, unmatched := a.RegionVertexCounts()
		fmt.Fprintf(w, "Vertices: %d\n", a.VertexCount())
		fmt.Fprintf(w, "Regions:  %d\n", len(a.ColorTable.Regions))
		fmt.Fprintf(w, "Unmatched vertices: %d\n", unmatched)
	}
	return nil
}

func cmdRegions(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("regions", flag.ContinueOnError)
	byCount := fs.Bool("sort", false, "Sort by vertex count, largest first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: fstool regions [-sort] <file.annot>")
	}

	a, err := freesurfer.ReadAnnot(fs.Arg(0))
	if err != nil {
		return err
	}
	counts, unmatched := a.RegionVertexCounts()

	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}
	if *byCount {
		sort.SliceStable(order, func(i, j int) bool {
			return counts[order[i]] > counts[order[j]]
		})
	}

	fmt.Fprintf(w, "%-5s %-32s %-13s %s\n", "INDEX", "NAME", "RGB", "VERTICES")
	for _, i := range order {
		r := a.ColorTable.Regions[i]
		fmt.Fprintf(w, "%-5d %-32s %3d %3d %3d   %d\n", r.Index, r.Name, r.R, r.G, r.B, counts[i])
	}
	if unmatched > 0 {
		fmt.Fprintf(w, "%-5s %-32s %-13s %d\n", "-", "(unmatched)", "", unmatched)
	}
	return nil
}

func cmdStats(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	bins := fs.Int("bins", 10, "Histogram bins (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: fstool stats [-bins N] <file>")
	}

	c, err := freesurfer.ReadCurv(fs.Arg(0))
	if err != nil {
		return err
	}
	values := c.Data
	r := colormap.FiniteRange(values)

	fmt.Fprintf(w, "Values:  %d\n", len(values))
	fmt.Fprintf(w, "Finite:  %d\n", r.Finite)
	if r.Finite == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		if !math32.IsNaN(v) && !math32.IsInf(v, 0) {
			sum += float64(v)
		}
	}
	fmt.Fprintf(w, "Min:     %g\n", r.Min)
	fmt.Fprintf(w, "Max:     %g\n", r.Max)
	fmt.Fprintf(w, "Mean:    %g\n", sum/float64(r.Finite))

	if *bins <= 0 {
		return nil
	}
	hist := histogram(values, r, *bins)
	width := (r.Max - r.Min) / float32(*bins)
	fmt.Fprintln(w)
	for i, n := range hist {
		lo := r.Min + float32(i)*width
		fmt.Fprintf(w, "  [%10.4g, %10.4g) %d\n", lo, lo+width, n)
	}
	return nil
}

// histogram buckets the finite values of r into n equal bins. The maximum
// lands in the last bin.
func histogram(values []float32, r colormap.Range, n int) []int {
	hist := make([]int, n)
	for _, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		i := int(r.Scale(v) * float32(n))
		if i >= n {
			i = n - 1
		}
		hist[i]++
	}
	return hist
}

// Command bankinfo prints the kernel properties of a singularity index
// filter bank.
//
// Usage:
//
//	bankinfo [flags]
//
// Examples:
//
//	bankinfo
//	bankinfo -min-scale 2.5 -scales 10
//	bankinfo -kernels
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-ridge/singularity"
)

func main() {
	minScale := flag.Float64("min-scale", singularity.DefaultMinScale, "minimum scale sigma in pixels")
	scales := flag.Int("scales", singularity.DefaultNrScales, "number of scales")
	kernels := flag.Bool("kernels", false, "also print per-kernel size and sum")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bankinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the scale sequence and kernel properties of a\n")
		fmt.Fprintf(os.Stderr, "singularity index filter bank.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	fb, err := singularity.NewFilterBank(*minScale, *scales)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printScales(fb)
	if *kernels {
		fmt.Println()
		printKernels(fb)
	}
}

func printScales(fb *singularity.FilterBank) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Scale\tSigma [px]\tDownsample\n")
	for s := 0; s < fb.NrScales(); s++ {
		factor := fb.Sigma(s) / fb.MinScale()
		fmt.Fprintf(tw, "%d\t%.4f\t1/%.4f\n", s, fb.Sigma(s), factor)
	}
	tw.Flush()
}

func printKernels(fb *singularity.FilterBank) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tSize\tSum\n")

	fmt.Fprintf(tw, "debias\t%d\t%.6f\n", len(fb.Debias()), sum(fb.Debias()))
	fmt.Fprintf(tw, "gaussian0\t%d\t%.6f\n", len(fb.Gaussian0()), sum(fb.Gaussian0()))
	for i := 0; i < 3; i++ {
		k := fb.SecondDerivative(i)
		fmt.Fprintf(tw, "secondDeriv[%d]\t%dx%d\t%.6f\n", i, k.Rows, k.Cols, k.Sum())
	}
	fmt.Fprintf(tw, "firstSmooth\t%d\t%.6f\n", len(fb.FirstSmooth()), sum(fb.FirstSmooth()))
	fmt.Fprintf(tw, "firstDeriv\t%d\t%.6f\n", len(fb.FirstDerivative()), sum(fb.FirstDerivative()))
	tw.Flush()
}

func sum(k []float64) float64 {
	total := 0.0
	for _, v := range k {
		total += v
	}
	return total
}

// Command benchqft compares the gate-by-gate Quantum Fourier Transform
// against the merged-phase variant.
//
// With no arguments it runs a demonstration on a fixed register size. With
// arguments it runs the timed comparison and persists the statistics:
//
//	benchqft <numQubits> <numReps> <outputPath>
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/qsimlab/statevec/bench"
)

const demoQubits = 24

func main() {
	switch len(os.Args) {
	case 1:
		if err := runDemo(); err != nil {
			logrus.Errorf("demo failed: %v", err)
			os.Exit(1)
		}
	case 4:
		cfg, outPath, ok := parseArgs(os.Args[1:])
		if !ok {
			usage()
			os.Exit(2)
		}

		if err := runCompare(cfg, outPath); err != nil {
			logrus.Errorf("benchmark failed: %v", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: benchqft")
	fmt.Fprintln(os.Stderr, "       benchqft <numQubits> <numReps> <outputPath>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "With no arguments a demonstration runs. Otherwise the phase ladder, its")
	fmt.Fprintln(os.Stderr, "merged form and both full transforms are timed over numReps random states")
	fmt.Fprintln(os.Stderr, "and the statistics written to outputPath as a Mathematica association.")
}

func parseArgs(args []string) (cfg bench.Config, outPath string, ok bool) {
	numQubits, err := strconv.Atoi(args[0])
	if err != nil {
		return bench.Config{}, "", false
	}

	numReps, err := strconv.Atoi(args[1])
	if err != nil {
		return bench.Config{}, "", false
	}

	outPath = args[2]
	if outPath == "" {
		return bench.Config{}, "", false
	}

	cfg = bench.Config{
		NumQubits: numQubits,
		NumReps:   numReps,
		Seed:      time.Now().UnixNano(),
	}

	return cfg, outPath, true
}

func runCompare(cfg bench.Config, outPath string) error {
	res, err := bench.RunQFT(context.Background(), cfg)
	if err != nil {
		return err
	}

	if err := res.WriteFile(outPath); err != nil {
		return err
	}
	logrus.Infof("wrote %s", outPath)

	return nil
}

func runDemo() error {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	cfg := bench.Config{
		NumQubits: demoQubits,
		NumReps:   1,
		Seed:      time.Now().UnixNano(),
		Log:       log,
	}

	pterm.DefaultSection.Println("Quantum Fourier Transform comparison")
	pterm.Info.Printfln("%d-qubit register, %d amplitudes", demoQubits, 1<<demoQubits)

	res, err := bench.RunQFT(context.Background(), cfg)
	if err != nil {
		return err
	}

	table := pterm.TableData{{"Operation", "Seconds"}}
	for _, op := range res.Ops {
		table = append(table, []string{op.Name, fmt.Sprintf("%.6f", op.Dur)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		return err
	}

	pterm.Info.Printfln("largest circuit vs merged amplitude delta: %.3e", res.MaxDelta)
	if res.MaxDelta <= 1e-9 {
		pterm.Success.Println("transforms agree")
	} else {
		pterm.Warning.Printfln("transforms disagree beyond tolerance: %.3e", res.MaxDelta)
	}

	return nil
}

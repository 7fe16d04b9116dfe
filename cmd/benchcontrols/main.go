// Command benchcontrols benchmarks the control-gate application
// strategies.
//
// With no arguments it runs a demonstration: every strategy applied once
// on a large register, timings printed to the terminal. With arguments it
// runs the full sweep and persists the statistics:
//
//	benchcontrols <s|m> <numQubits> <numReps> <outputPath>
//
// where s sweeps the single-control strategies over every control position
// and m sweeps the multi-control strategies over every control-set size.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/qsimlab/statevec"
	"github.com/qsimlab/statevec/bench"
	"github.com/qsimlab/statevec/internal/clock"
	"github.com/qsimlab/statevec/internal/sysinfo"
)

const (
	demoQubits = 27
	demoCtrl   = 2
)

func main() {
	switch len(os.Args) {
	case 1:
		if err := runDemo(); err != nil {
			logrus.Errorf("demo failed: %v", err)
			os.Exit(1)
		}
	case 5:
		mode, cfg, outPath, ok := parseArgs(os.Args[1:])
		if !ok {
			usage()
			os.Exit(2)
		}

		if err := runSweep(mode, cfg, outPath); err != nil {
			logrus.Errorf("benchmark failed: %v", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: benchcontrols")
	fmt.Fprintln(os.Stderr, "       benchcontrols <s|m> <numQubits> <numReps> <outputPath>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "With no arguments a demonstration runs. Mode s sweeps the single-control")
	fmt.Fprintln(os.Stderr, "strategies over every control position; mode m sweeps the multi-control")
	fmt.Fprintln(os.Stderr, "strategies over every control-set size. Results are written to outputPath")
	fmt.Fprintln(os.Stderr, "as a Mathematica association.")
}

func parseArgs(args []string) (mode string, cfg bench.Config, outPath string, ok bool) {
	mode = args[0]
	if mode != "s" && mode != "m" {
		return "", bench.Config{}, "", false
	}

	numQubits, err := strconv.Atoi(args[1])
	if err != nil {
		return "", bench.Config{}, "", false
	}

	numReps, err := strconv.Atoi(args[2])
	if err != nil {
		return "", bench.Config{}, "", false
	}

	outPath = args[3]
	if outPath == "" {
		return "", bench.Config{}, "", false
	}

	cfg = bench.Config{
		NumQubits: numQubits,
		NumReps:   numReps,
		Seed:      time.Now().UnixNano(),
	}

	return mode, cfg, outPath, true
}

func runSweep(mode string, cfg bench.Config, outPath string) error {
	ctx := context.Background()

	var (
		res *bench.SweepResult
		err error
	)

	switch mode {
	case "s":
		res, err = bench.RunSingle(ctx, cfg)
	case "m":
		res, err = bench.RunMulti(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if err := res.WriteFile(outPath); err != nil {
		return err
	}
	logrus.Infof("wrote %s", outPath)

	return nil
}

// runDemo applies every strategy once on a fixed large register and prints
// the wall-clock time per application.
func runDemo() error {
	demoCtrls := []int{0, 2, 4, 6, 7, 15, 16, 20, 21, 22}
	transform := func(x float64) float64 { return 1.5 * (x - 0.1) * (x - 0.1) }

	host := sysinfo.Describe()
	pterm.DefaultSection.Println("Control-gate strategy demonstration")
	pterm.Info.Printfln("%s, %d logical cores", host.CPU, host.LogicalCores)
	pterm.Info.Printfln("%d-qubit register, %d amplitudes", demoQubits, 1<<demoQubits)

	if err := sysinfo.CanAllocate(8 << demoQubits); err != nil {
		return err
	}

	amps, err := statevec.NewVector[float64](demoQubits)
	if err != nil {
		return err
	}

	single := pterm.TableData{{"Strategy", "Label", "Seconds"}}
	for _, s := range bench.SingleStrategies() {
		statevec.FillOnes(amps)
		sw := clock.Start()
		if err := statevec.ApplyControlled(amps, demoCtrl, transform, s); err != nil {
			return err
		}
		single = append(single, []string{s.String(), s.Label(), fmt.Sprintf("%.6f", sw.Seconds())})
	}

	pterm.DefaultSection.WithLevel(2).Printfln("Single control on qubit %d", demoCtrl)
	if err := pterm.DefaultTable.WithHasHeader().WithData(single).Render(); err != nil {
		return err
	}

	multi := pterm.TableData{{"Strategy", "Label", "Seconds"}}
	for _, s := range bench.MultiStrategies() {
		statevec.FillOnes(amps)
		sw := clock.Start()
		if err := statevec.ApplyMultiControlled(amps, demoCtrls, transform, s); err != nil {
			return err
		}
		multi = append(multi, []string{s.String(), s.Label(), fmt.Sprintf("%.6f", sw.Seconds())})
	}

	pterm.DefaultSection.WithLevel(2).Printfln("Multi control on qubits %v", demoCtrls)
	if err := pterm.DefaultTable.WithHasHeader().WithData(multi).Render(); err != nil {
		return err
	}

	pterm.Success.Println("all strategies applied")

	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/procfs"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/code-tool/fpid/internal/finder"
)

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: fpid [-q] [-s] [-h] <program name or path>\n\n"+
		"Prints the PIDs of running processes whose command name equals the\n"+
		"target, or, when the target contains a '/', whose executable path\n"+
		"equals it exactly. Exits 0 if at least one process matched.\n\nOptions:\n%s"+
		"  -h, --help          show this help\n", newFlagSet().FlagUsages())
}

func run(args []string, procMount string, stdout, stderr io.Writer) int {
	conf, target, err := parseArgs(args)
	if errors.Is(err, pflag.ErrHelp) {
		printHelp(stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v (see \"fpid -h\")\n", err)
		return 1
	}

	log := createLogger(zapcore.AddSync(stderr))
	defer func() { _ = log.Sync() }()

	f, err := finder.New(procMount)
	if err != nil {
		log.Error("can't open process table", zap.Error(err))
		return 1
	}

	found, err := f.Find(finder.NewQuery(target), func(pid int) bool {
		if !conf.Quiet {
			fmt.Fprintln(stdout, pid)
		}

		return !conf.SingleShot
	})
	if err != nil {
		log.Error("process table scan failed", zap.Error(err))
		return 1
	}

	if !found {
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], procfs.DefaultMountPoint, os.Stdout, os.Stderr))
}

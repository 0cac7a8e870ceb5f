package finder

import (
	"fmt"
	"strings"

	"github.com/prometheus/procfs"
)

// Mode selects how a target is compared against a process.
type Mode int

const (
	// ModeName compares the target against the basename of the first
	// cmdline argument of each process.
	ModeName Mode = iota
	// ModePath compares the target against the resolved target of the
	// exe link of each process.
	ModePath
)

// Query is a classified search target. The mode is fixed at construction
// and never re-derived during a scan.
type Query struct {
	Target string
	Mode   Mode
}

// NewQuery classifies target: anything containing a path separator is
// compared against executable paths, everything else against command names.
func NewQuery(target string) Query {
	if strings.IndexByte(target, '/') >= 0 {
		return Query{Target: target, Mode: ModePath}
	}

	return Query{Target: target, Mode: ModeName}
}

// Finder scans a proc filesystem for processes matching a Query.
type Finder struct {
	fs procfs.FS
}

// New opens the process table rooted at mountPoint.
func New(mountPoint string) (*Finder, error) {
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, fmt.Errorf("open proc mount %q: %w", mountPoint, err)
	}

	return &Finder{fs: fs}, nil
}

// Find walks the process table once and calls report for every matching
// process, in table order. report returning false stops the walk early.
// Find returns whether any process matched.
//
// The table is volatile: entries that vanish mid-scan, or whose exe link
// or cmdline cannot be read, are skipped without error.
func (f *Finder) Find(q Query, report func(pid int) bool) (bool, error) {
	procs, err := f.fs.AllProcs()
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}

	found := false
	for _, p := range procs {
		if !matches(q, p) {
			continue
		}

		found = true
		if !report(p.PID) {
			break
		}
	}

	return found, nil
}

func matches(q Query, p procfs.Proc) bool {
	if q.Mode == ModePath {
		// Exact byte equality, no path cleaning. procfs reports a
		// missing exe link as an empty string with a nil error.
		exe, err := p.Executable()
		if err != nil || exe == "" {
			return false
		}

		return exe == q.Target
	}

	argv, err := p.CmdLine()
	if err != nil || len(argv) == 0 {
		return false
	}

	return basename(argv[0]) == q.Target
}

// basename returns everything after the last '/' byte, or s unchanged if
// there is none. Not filepath.Base: that trims trailing separators and
// rewrites "" to ".", which would loosen the byte-exact comparison.
func basename(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}

	return s
}

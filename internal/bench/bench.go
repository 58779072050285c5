// Package bench measures the sortkit engine against the standard library on
// generated inputs and renders the results.
package bench

import (
	"cmp"
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-sortkit/arrays"
	"github.com/ajroetker/go-sortkit/arrays/contrib/parallel"
	"github.com/ajroetker/go-sortkit/arrays/contrib/workerpool"
)

// Pattern names an input shape.
type Pattern string

const (
	Random    Pattern = "random"
	Sorted    Pattern = "sorted"
	Reversed  Pattern = "reversed"
	Sawtooth  Pattern = "sawtooth"
	FewUnique Pattern = "fewunique"
	Strings   Pattern = "strings"
)

// Patterns lists every known pattern.
var Patterns = []Pattern{Random, Sorted, Reversed, Sawtooth, FewUnique, Strings}

// ParsePattern validates a pattern name.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(s)
	if !slices.Contains(Patterns, p) {
		return "", fmt.Errorf("unknown pattern %q (want one of %v)", s, Patterns)
	}
	return p, nil
}

// Engine names.
const (
	EngineSortkit  = "sortkit"
	EngineParallel = "sortkit-parallel"
	EngineStdlib   = "stdlib-stable"
)

// Options configures a benchmark run.
type Options struct {
	Sizes    []int
	Patterns []Pattern
	Rounds   int
	Seed     int64
	// Pool enables the parallel engine when set.
	Pool *workerpool.Pool
}

// Result is the timing of one engine on one input.
type Result struct {
	Pattern  Pattern       `json:"pattern" yaml:"pattern"`
	Size     int           `json:"size" yaml:"size"`
	Engine   string        `json:"engine" yaml:"engine"`
	Strategy string        `json:"strategy" yaml:"strategy"`
	Rounds   int           `json:"rounds" yaml:"rounds"`
	PerOp    time.Duration `json:"perOpNs" yaml:"perOpNs"`
}

// Host describes the machine the run happened on.
type Host struct {
	GOOS     string   `json:"goos" yaml:"goos"`
	GOARCH   string   `json:"goarch" yaml:"goarch"`
	CPUs     int      `json:"cpus" yaml:"cpus"`
	Features []string `json:"features" yaml:"features"`
	Radix    bool     `json:"radix" yaml:"radix"`
}

// Report is the outcome of Run.
type Report struct {
	Started time.Time `json:"started" yaml:"started"`
	Host    Host      `json:"host" yaml:"host"`
	Results []Result  `json:"results" yaml:"results"`
}

// CurrentHost collects the host description, including the CPU features
// reported by golang.org/x/sys/cpu.
func CurrentHost() Host {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F, "avx512f")
		add(cpu.X86.HasBMI2, "bmi2")
		add(cpu.X86.HasPOPCNT, "popcnt")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasATOMICS, "atomics")
	}
	return Host{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		Features: features,
		Radix:    arrays.RadixEnabled(),
	}
}

// Run times every engine on every (pattern, size) pair. Each engine's output
// is checked against the standard library before it is timed; a mismatch
// aborts the run. Cancelling ctx stops between measurements.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (*Report, error) {
	if opts.Rounds <= 0 {
		opts.Rounds = 1
	}
	rep := &Report{Started: time.Now().UTC(), Host: CurrentHost()}

	for _, p := range opts.Patterns {
		for _, n := range opts.Sizes {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			rng := rand.New(rand.NewSource(opts.Seed))

			var results []Result
			var err error
			if p == Strings {
				results, err = runCase(opts, p, GenerateStrings(n, rng), true)
			} else {
				results, err = runCase(opts, p, Generate(p, n, rng), false)
			}
			if err != nil {
				return rep, err
			}
			for _, r := range results {
				logger.Debug("measured",
					zap.String("pattern", string(r.Pattern)),
					zap.Int("size", r.Size),
					zap.String("engine", r.Engine),
					zap.Duration("perOp", r.PerOp))
			}
			rep.Results = append(rep.Results, results...)
		}
	}
	return rep, nil
}

type engine[E any] struct {
	name     string
	strategy string
	sort     func([]E)
}

func runCase[E cmp.Ordered](opts Options, p Pattern, ref []E, stringKeyed bool) ([]Result, error) {
	n := len(ref)
	engines := []engine[E]{
		{EngineSortkit, arrays.StrategyFor(n, stringKeyed).String(), arrays.Sort[E]},
		{EngineStdlib, "symmerge", func(d []E) { slices.SortStableFunc(d, cmp.Compare[E]) }},
	}
	if opts.Pool != nil {
		engines = append(engines, engine[E]{EngineParallel, "parallel", func(d []E) { parallel.Sort(opts.Pool, d) }})
	}

	want := slices.Clone(ref)
	slices.Sort(want)

	data := make([]E, n)
	var out []Result
	for _, e := range engines {
		copy(data, ref)
		e.sort(data)
		if !slices.Equal(data, want) {
			return nil, fmt.Errorf("%s produced wrong order on %s/%d", e.name, p, n)
		}

		var total time.Duration
		for range opts.Rounds {
			copy(data, ref)
			start := time.Now()
			e.sort(data)
			total += time.Since(start)
		}
		out = append(out, Result{
			Pattern:  p,
			Size:     n,
			Engine:   e.name,
			Strategy: e.strategy,
			Rounds:   opts.Rounds,
			PerOp:    total / time.Duration(opts.Rounds),
		})
	}
	return out, nil
}

// Generate returns n integers shaped like p. Strings is not an integer
// pattern and yields random integers.
func Generate(p Pattern, n int, rng *rand.Rand) []int64 {
	data := make([]int64, n)
	for i := range data {
		switch p {
		case Sorted:
			data[i] = int64(i)
		case Reversed:
			data[i] = int64(n - i)
		case Sawtooth:
			data[i] = int64(i % 1024)
		case FewUnique:
			data[i] = rng.Int63n(8)
		default:
			data[i] = rng.Int63()
		}
	}
	return data
}

// GenerateStrings returns n keys with a shared prefix and random suffixes,
// the shape of typical log or identifier data.
func GenerateStrings(n int, rng *rand.Rand) []string {
	data := make([]string, n)
	for i := range data {
		data[i] = "user/" + strconv.FormatInt(rng.Int63n(int64(n)+1), 36)
	}
	return data
}

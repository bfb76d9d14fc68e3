package bench

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MasterDimmy/zipologger"
	"github.com/pkg/errors"

	"github.com/goupdate/bigomap"
	"github.com/goupdate/bigomap/complexity"
)

// The key probed at every size. Workload strings never match it.
const (
	probeKey   = "key"
	probeValue = "value"
)

type Options struct {
	Sizes        []int
	WorkloadSize int
	KeyLength    int
	Seed         int64
	Capacity     int
	Rounds       int //timed repetitions per operation, averaged
}

func DefaultOptions() Options {
	return Options{
		Sizes:        append([]int(nil), complexity.DefaultSizes...),
		WorkloadSize: DefaultWorkloadSize,
		KeyLength:    DefaultKeyLength,
		Capacity:     bigomap.DefaultCapacity,
		Rounds:       1,
	}
}

type Result struct {
	Id         int64              `json:"id"`
	Kind       bigomap.Kind       `json:"kind"`
	Samples    complexity.Samples `json:"samples"`
	Report     complexity.Report  `json:"report"`
	Count      int                `json:"count"`      //entries in the largest map after the run
	Collisions int                `json:"collisions"` //hashed maps only
}

func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "set runtimes: %v\n", r.Samples.Set)
	fmt.Fprintf(&b, "get runtimes: %v\n", r.Samples.Get)
	fmt.Fprintf(&b, "remove runtimes: %v\n", r.Samples.Remove)
	b.WriteString(r.Report.String())
	return b.String()
}

type Runner struct {
	opts     Options
	workload *Workload
	log      *zipologger.Logger
}

func NewRunner(opts Options) (*Runner, error) {
	if len(opts.Sizes) == 0 {
		return nil, errors.New("bench: no sizes to measure")
	}
	if opts.Rounds < 1 {
		return nil, errors.Errorf("bench: rounds must be positive, got %d", opts.Rounds)
	}
	if largest := maxSize(opts.Sizes); largest > opts.WorkloadSize {
		return nil, errors.Errorf("bench: size %d exceeds workload of %d", largest, opts.WorkloadSize)
	}

	w, err := NewWorkload(opts.WorkloadSize, opts.KeyLength, opts.Seed)
	if err != nil {
		return nil, err
	}
	return &Runner{opts: opts, workload: w}, nil
}

func maxSize(sizes []int) int {
	s := append([]int(nil), sizes...)
	sort.Ints(s)
	return s[len(s)-1]
}

func (r *Runner) SetLogger(log *zipologger.Logger) *Runner {
	r.log = log
	return r
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.log != nil {
		r.log.Print(fmt.Sprintf(format, args...))
	}
}

type collider interface {
	Collisions() int
}

// Run times Set, Get and Remove of a fresh key at every configured size and
// classifies the three runtime series.
func (r *Runner) Run(kind bigomap.Kind) (*Result, error) {
	samples := complexity.NewSamples(r.opts.Sizes)
	res := &Result{Kind: kind}

	var sw Stopwatch
	largest := -1
	for _, size := range r.opts.Sizes {
		m, err := MakeMap(kind, size, r.workload, r.opts.Capacity)
		if err != nil {
			return nil, err
		}

		var set, get, remove float64
		for round := 0; round < r.opts.Rounds; round++ {
			sw.Start()
			m.Set(probeKey, probeValue)
			sw.Stop()
			set += sw.Micros()

			sw.Start()
			_, found := m.Get(probeKey)
			sw.Stop()
			get += sw.Micros()
			if !found {
				return nil, errors.Errorf("bench: %s map lost %q at size %d", kind, probeKey, size)
			}

			sw.Start()
			m.Remove(probeKey)
			sw.Stop()
			remove += sw.Micros()
		}

		rounds := float64(r.opts.Rounds)
		samples.Add(set/rounds, get/rounds, remove/rounds)
		r.logf("%s size %d: set %.2fus get %.2fus remove %.2fus", kind, size, set/rounds, get/rounds, remove/rounds)

		if size < largest {
			continue
		}
		largest = size
		res.Count = m.Count()
		if c, ok := m.(collider); ok {
			res.Collisions = c.Collisions()
		}
	}

	res.Samples = *samples
	res.Report = complexity.Analyze(*samples)
	r.logf("%s: set %s, get %s, remove %s", kind, res.Report.Set.Class, res.Report.Get.Class, res.Report.Remove.Class)
	return res, nil
}

// RunAll runs every kind in order and stops at the first failure.
func (r *Runner) RunAll(kinds []bigomap.Kind) ([]*Result, error) {
	results := make([]*Result, 0, len(kinds))
	for _, kind := range kinds {
		res, err := r.Run(kind)
		if err != nil {
			return results, errors.Wrapf(err, "run %s", kind)
		}
		results = append(results, res)
	}
	return results, nil
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rhartert/walksat/parsers"
	"github.com/rhartert/walksat/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagNoise = flag.Int(
	"noise",
	50,
	"probability (in percent) of taking a random-walk step instead of a greedy one",
)

var flagMaxFlips = flag.Int64(
	"max_flips",
	100000,
	"maximum number of flips per try (-1 = no maximum)",
)

var flagMaxTries = flag.Int64(
	"max_tries",
	-1,
	"maximum number of restarts allowed to solve the problem (-1 = no maximum)",
)

var flagTimeout = flag.Duration(
	"timeout",
	-1,
	"maximum solving time (-1 = no timeout)",
)

var flagSeed = flag.Int64(
	"seed",
	-1,
	"random seed (-1 = seed from the current time)",
)

var flagDIMACS = flag.Bool(
	"dimacs",
	false,
	"read the instance as a DIMACS CNF file instead of the clause-per-line format",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"read the instance as a gzipped file",
)

var flagTopFlipped = flag.Int(
	"top_flipped",
	0,
	"report the n most flipped propositions after solving (0 = no report)",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		noise:        *flagNoise,
		maxFlips:     *flagMaxFlips,
		maxTries:     *flagMaxTries,
		timeout:      *flagTimeout,
		seed:         *flagSeed,
		dimacs:       *flagDIMACS,
		gzipped:      *flagGzip,
		topFlipped:   *flagTopFlipped,
	}, nil
}

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	noise        int
	maxFlips     int64
	maxTries     int64
	timeout      time.Duration
	seed         int64
	dimacs       bool
	gzipped      bool
	topFlipped   int
}

func problemOptions(cfg *config) sat.Options {
	options := sat.DefaultOptions
	options.NoiseLevel = cfg.noise
	options.MaxFlips = cfg.maxFlips
	options.MaxTries = cfg.maxTries
	options.Timeout = cfg.timeout
	if cfg.seed >= 0 {
		options.Random = sat.NewRandom(cfg.seed)
	}
	return options
}

func run(cfg *config) error {
	p, err := sat.NewProblem(problemOptions(cfg))
	if err != nil {
		return fmt.Errorf("invalid options: %s", err)
	}

	if cfg.dimacs {
		err = parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped, p)
	} else {
		err = parsers.LoadClauses(cfg.instanceFile, cfg.gzipped, p)
	}
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c propositions: %d\n", p.NumPropositions())
	fmt.Printf("c clauses:      %d\n", p.NumClauses())

	t := time.Now()
	status := p.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec):   %f\n", elapsed.Seconds())
	fmt.Printf("c flips:        %d (%.2f /sec)\n", p.TotalFlips, float64(p.TotalFlips)/elapsed.Seconds())
	fmt.Printf("c tries:        %d\n", p.TotalTries)
	fmt.Printf("c status:       %s\n", status.String())

	if cfg.topFlipped > 0 {
		for _, pf := range p.TopFlipped(cfg.topFlipped) {
			fmt.Printf("c flips(%s):    %d\n", pf.Proposition.Name, pf.Flips)
		}
	}

	if status == sat.Satisfied {
		fmt.Println("s SATISFIABLE")
		printModel(p)
	} else {
		fmt.Println("s UNKNOWN")
	}

	return nil
}

// printModel prints the satisfying assignment, one "v" line per proposition,
// with a '!' prefix for propositions assigned false.
func printModel(p *sat.Problem) {
	for _, prop := range p.Propositions() {
		if p.Value(prop.Index) {
			fmt.Printf("v %s\n", prop.Name)
		} else {
			fmt.Printf("v !%s\n", prop.Name)
		}
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

type workload struct {
	label   string
	variant string
	fen     string
	depth   int
}

var workloads = []workload{
	{"Initial", "chess", "", 4},
	{"Initial", "chess", "", 5},
	{"Kiwipete", "chess", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"Chess960", "chess960", "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9", 3},
	{"Antichess", "antichess", "", 3},
	{"Atomic", "atomic", "", 3},
	{"Crazyhouse", "crazyhouse", "", 3},
	{"Horde", "horde", "", 3},
	{"RacingKings", "racingkings", "", 3},
}

func main() {
	skipBench := flag.Bool("nobench", false, "Skip the go test benchmarks")
	verify := flag.Bool("verify", false, "Cross-check standard perft counts against dragontoothmg")
	flag.Parse()

	if !*skipBench {
		// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
		fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
		if code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
			os.Exit(code)
		}
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	failed := 0
	for _, w := range workloads {
		args := []string{"run", "./cmd/perft", "-variant", w.variant, "-depth", strconv.Itoa(w.depth), "-label", w.label}
		if w.fen != "" {
			args = append(args, "-fen", w.fen)
		}
		if *verify && w.variant == "chess" {
			args = append(args, "-verify")
		}
		if run("go", args...) != 0 {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

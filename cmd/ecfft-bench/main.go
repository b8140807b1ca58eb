// Command ecfft-bench builds an EcFft engine and times Evaluate at a chosen
// level, reporting throughput to stderr.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/vybium/ecfft/internal/ecfft/testutil"
	"github.com/vybium/ecfft/pkg/ecfft"
)

func main() {
	k := flag.Int("k", 10, "evaluate a degree-<2^k polynomial")
	workers := flag.Int("workers", 0, "worker count (0 = use all CPUs)")
	seed := flag.Uint64("seed", 1, "seed for the deterministic test polynomial")
	flag.Parse()

	if *k < 1 || *k > ecfft.MaxLevel {
		log.Fatalf("k must be in [1, %d], got %d", ecfft.MaxLevel, *k)
	}

	cfg := ecfft.DefaultConfig()
	if *workers > 0 {
		cfg.WithWorkers(*workers)
	}

	log.Printf("building caches for levels up to %d...", ecfft.MaxLevel)
	start := time.Now()
	e, err := ecfft.New(cfg)
	if err != nil {
		log.Fatalf("construction failed: %v", err)
	}
	log.Printf("caches built in %s", time.Since(start))

	coeffs := testutil.DeterministicElements(e.Field(), *seed, 1<<uint(*k))
	poly, err := ecfft.NewPolynomial(e.Field(), coeffs)
	if err != nil {
		log.Fatalf("building polynomial failed: %v", err)
	}

	log.Printf("evaluating degree-<2^%d polynomial...", *k)
	start = time.Now()
	out, err := e.Evaluate(*k, poly)
	if err != nil {
		log.Fatalf("evaluate failed: %v", err)
	}
	elapsed := time.Since(start)

	log.Printf("evaluated %d points in %s (%.0f points/sec)",
		out.Len(), elapsed, float64(out.Len())/elapsed.Seconds())
}

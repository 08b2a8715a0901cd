// Command seed populates a running service with demo assessments,
// applications and submissions, then prints the analytics report for
// each assessment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iitg/jobassessment/internal/seed"
	"github.com/iitg/jobassessment/pkg/logger"
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the service")
		assessments = flag.Int("assessments", 3, "Number of assessments to create")
		candidates  = flag.Int("candidates", 8, "Number of candidates per assessment")
		timeout     = flag.Duration("timeout", 10*time.Second, "HTTP request timeout")
		seedValue   = flag.Int64("seed", time.Now().UnixNano(), "PRNG seed for reproducible data")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if *assessments < 1 || *candidates < 1 {
		fmt.Fprintln(os.Stderr, "assessments and candidates must be at least 1")
		os.Exit(1)
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config := seed.Config{
		BaseURL:     *baseURL,
		Assessments: *assessments,
		Candidates:  *candidates,
		Timeout:     *timeout,
		Seed:        *seedValue,
		Verbose:     *verbose,
	}

	stats, err := seed.Run(ctx, config)
	if err != nil {
		logger.Get().Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}

	fmt.Printf("seeded %d assessments, %d applications, %d submissions in %s\n",
		stats.AssessmentsCreated, stats.ApplicationsSubmitted, stats.SubmissionsGraded, stats.Duration.Round(time.Millisecond))
}

// Command cli reads a batch of engagements as JSON from a file argument (or
// stdin), evaluates them concurrently and writes the JSON report to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"intercept-simulator/internal/batch"
	"intercept-simulator/internal/config"

	"github.com/labstack/gommon/log"
)

func main() {
	workers := flag.Int("workers", 0, "maximum cases evaluated at once (0 = one per CPU)")
	logLevel := flag.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR, OFF)")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetLevel(config.ParseLevel(*logLevel))

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("error reading input: %v", err)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := batch.RunJSON(ctx, in, *workers)
	if err != nil {
		log.Errorf("batch error: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

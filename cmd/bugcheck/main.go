package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"velocity-shop/internal/bugcheck"

	"github.com/spf13/pflag"
)

func main() {
	baseURL := pflag.String("base-url", "http://localhost:8080", "storefront API root, without the /api prefix")
	out := pflag.String("out", "", "write the JSON report to this file")
	timeout := pflag.Duration("timeout", 30*time.Second, "per-request timeout")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := bugcheck.NewRunner(*baseURL, &http.Client{Timeout: *timeout}, os.Stdout)
	report := runner.Run(ctx)

	if *out != "" {
		if err := bugcheck.WriteReport(*out, report); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("\nResults saved to %s\n", *out)
	}
}

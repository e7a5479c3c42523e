// Command vehicle-query looks up a vehicle against a running query API and
// prints the normalized view as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"vehicle-query-service/internal/client"
	"vehicle-query-service/internal/logger"
	"vehicle-query-service/internal/orchestrator"
	"vehicle-query-service/internal/viewmodel"
)

const (
	apiURLEnv     = "VEHICLE_QUERY_API_URL"
	defaultAPIURL = "http://localhost:8000"

	exitOK         = 0
	exitFailure    = 1
	exitFieldError = 2
)

type options struct {
	Plate          string
	IdentityNumber string
	APIURL         string
	Timeout        time.Duration
	Placeholder    bool
	Verbose        bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("vehicle-query", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Plate, "placa", "", "License plate, e.g. ABC-123")
	fs.StringVar(&opts.IdentityNumber, "cedula", "", "Owner identity number")
	fs.StringVar(&opts.APIURL, "api", "", "Query API base URL (or "+apiURLEnv+")")
	fs.DurationVar(&opts.Timeout, "timeout", 15*time.Second, "Query timeout")
	fs.BoolVar(&opts.Placeholder, "placeholder", false, "Print the example view without querying")
	fs.BoolVar(&opts.Verbose, "v", false, "Log requests to stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.APIURL == "" {
		opts.APIURL = os.Getenv(apiURLEnv)
	}
	if opts.APIURL == "" {
		opts.APIURL = defaultAPIURL
	}
	if opts.Timeout <= 0 {
		return options{}, errors.New("timeout must be positive")
	}

	return opts, nil
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitFieldError
	}

	env := "production"
	if opts.Verbose {
		env = "development"
	}
	log := logger.NewWithWriter(env, stderr)

	orch := orchestrator.New(
		client.NewQueryClient(opts.APIURL),
		viewmodel.New(viewmodel.DefaultOptions()),
		opts.Timeout,
	)

	var view viewmodel.ViewModel
	if opts.Placeholder {
		view = orch.Placeholder()
	} else {
		log.Debug().Str("api", opts.APIURL).Str("plate", opts.Plate).Msg("querying vehicle")
		view, err = orch.Run(ctx, orchestrator.Input{Plate: opts.Plate, IdentityNumber: opts.IdentityNumber})
		if err != nil {
			return reportError(stderr, err)
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		fmt.Fprintf(stderr, "failed to write view: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func reportError(stderr io.Writer, err error) int {
	var (
		fieldErrs orchestrator.FieldErrors
		upstream  *client.UpstreamError
	)
	switch {
	case errors.Is(err, orchestrator.ErrIncompleteInput):
		fmt.Fprintln(stderr, err)
		return exitFieldError
	case errors.As(err, &fieldErrs):
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(stderr, "%s: %s\n", field, fieldErrs[field])
		}
		return exitFieldError
	case errors.As(err, &upstream):
		fmt.Fprintln(stderr, upstream.Message)
		return exitFailure
	default:
		fmt.Fprintf(stderr, "query failed: %v\n", err)
		return exitFailure
	}
}

// Command ratecheck reviews a rate form stored as YAML without starting the
// HTTP service.
//
//	ratecheck review shipment.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ratecalc/internal/adapters/in/yamlfile"
	"ratecalc/internal/core/application/usecases/queries"
	"ratecalc/internal/core/domain/services"
	"ratecalc/internal/core/domain/validation"
	"ratecalc/internal/core/domain/validators"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 || args[0] != "review" {
		fmt.Fprintln(stderr, "Usage: ratecheck review /path/to/shipment.yaml")
		return exitUsage
	}
	path := args[1]

	query, err := yamlfile.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Review failed: %v\n", err)
		return exitInvalid
	}

	handler := queries.NewReviewShipmentQueryHandler(
		validators.NewAddressValidationChain(),
		validators.NewPackageValidationChain(),
		validators.NewShippingOptionsValidationChain(),
		services.NewDimensionalWeightCalculator(),
		nil,
	)
	review, err := handler.Handle(ctx, query)
	if err != nil {
		fmt.Fprintf(stderr, "Review failed: %v\n", err)
		return exitInvalid
	}

	code := exitValid
	if review.IsComplete {
		fmt.Fprintf(stdout, "OK: %s (review %s)\n", path, review.ReviewID)
	} else {
		fmt.Fprintf(stdout, "Invalid: %s (review %s)\n", path, review.ReviewID)
		printErrors(stdout, "origin", review.Origin)
		printErrors(stdout, "destination", review.Destination)
		printErrors(stdout, "package", review.Package)
		printErrors(stdout, "shippingOptions", review.Options)
		code = exitInvalid
	}

	bw := review.BillableWeight
	applied := "no"
	if bw.IsDimensionalApplied {
		applied = "yes"
	}
	fmt.Fprintf(stdout, "Billable weight: %.2f lbs (actual %.2f, dimensional %.2f, dimensional applied: %s)\n",
		bw.BillableWeightLbs, bw.ActualWeightLbs, bw.DimensionalWeightLbs, applied)

	return code
}

func printErrors(w io.Writer, section string, result validation.Result) {
	for _, e := range result.Errors {
		fmt.Fprintf(w, "- %s.%s\n", section, e)
	}
}

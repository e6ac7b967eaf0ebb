package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/order-precheck/internal/validate"
	"github.com/Gunvolt24/order-precheck/pkg/plan"
)

// CLI-приложение для проверки планов прогона.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	format := plan.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	path := *inputPath
	if path == "" {
		if format == plan.FormatAuto {
			format = plan.FormatJSONL
		}
		path = "/dev/stdin"
	}

	summary, err := plan.LintFile(path, format, validate.Dependencies, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan lint: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "plan lint ok (%s)\n", summary)
}

package core_test

import (
	"context"
	"fmt"
	"os"

	"github.com/posturekit/posturekit/pkg/core"
)

// ExampleAssess demonstrates scanning a directory and scoring its posture.
func ExampleAssess() {
	cfg := core.Config{
		Root:            ".",
		Workers:         4,
		MaxBytes:        1024 * 1024,
		DefaultExcludes: true,
	}

	rep, res, err := core.Assess(context.Background(), cfg, nil, core.Scope{SystemName: "my-service"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "assessment failed: %v\n", err)
		return
	}

	fmt.Printf("scanned %d files\n", res.FilesScanned)
	if rep.Scores.Overall.Insufficient() {
		fmt.Println("no controls assessed")
	} else {
		fmt.Printf("overall score: %.1f\n", rep.Scores.Overall.Value())
	}
	_ = core.MarshalReport(os.Stdout, rep)
}

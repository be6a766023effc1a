//go:build ignore

// Dumps the built-in seed catalogue as JSON, suitable for the file seed
// loader (SEED_SOURCE=file) or for uploading to S3.
//
// Usage: go run scripts/dump_seed_catalog.go > seed.json
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"appmart/internal/catalog"
)

func main() {
	data, err := json.MarshalIndent(catalog.DefaultSeed(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

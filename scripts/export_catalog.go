//go:build ignore

// export_catalog writes the built-in catalogue as a JSON file suitable for
// CATALOG_SOURCE=file or for uploading to the S3 catalogue bucket.
//
//	go run scripts/export_catalog.go [-out data/catalog/catalog.json]
//
// Output ending in .gz is gzip-compressed.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"islet-durians/internal/catalog"
)

func main() {
	out := flag.String("out", "data/catalog/catalog.json", "output file")
	flag.Parse()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()

	if err := catalog.Encode(f, catalog.Default(), strings.HasSuffix(*out, ".gz")); err != nil {
		log.Fatalf("Failed to write catalogue: %v", err)
	}

	log.Printf("Wrote %s", *out)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/declmap/declmap/internal/gen"
	"github.com/declmap/declmap/internal/naming"
)

var version = "dev"

func main() {
	typeName := flag.String("type", "", "struct type name (required)")
	tableName := flag.String("table", "", "table name (optional; derived from -type if omitted)")
	plural := flag.Bool("plural", false, "pluralize the derived table name")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("declmap", version)
		return
	}

	if *typeName == "" {
		log.Fatal("-type flag is required")
	}

	if *tableName == "" {
		*tableName = naming.CamelToSnake(*typeName)
		if *plural {
			*tableName = inflection.Plural(*tableName)
		}
	}

	goFile := os.Getenv("GOFILE")
	if goFile == "" {
		log.Fatal("GOFILE environment variable is not set (run via go:generate)")
	}

	info, err := gen.Parse(goFile, *typeName)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	info.TableName = *tableName

	src, err := gen.Render(info)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	outFile := strings.ToLower(*typeName) + "_gen.go"
	outPath := filepath.Join(filepath.Dir(goFile), outFile)

	if err := os.WriteFile(outPath, src, 0o644); err != nil { //nolint:gosec // generated code should be world-readable
		log.Fatalf("write %s: %v", outPath, err)
	}

	fmt.Printf("declmap: wrote %s\n", outPath)
}

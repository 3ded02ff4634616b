package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"al.essio.dev/pkg/shellescape"

	"mathmcp/internal/buildspec"
)

func main() {
	var (
		contextDir = flag.String("context", "", "build context directory for copy-source checks")
		quiet      = flag.Bool("q", false, "suppress per-file summaries; print findings only")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: mathmcp-lint [-context dir] [-q] <buildfile>...")
		os.Exit(2)
	}

	failed := false
	for _, path := range files {
		findings, err := lintFile(path, *contextDir, *quiet)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		if len(findings) > 0 {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func lintFile(path, contextDir string, quiet bool) ([]buildspec.Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	spec, err := buildspec.Parse(f)
	if err != nil {
		return nil, err
	}

	var buildContext fs.FS
	if contextDir != "" {
		buildContext = os.DirFS(contextDir)
	}
	findings := buildspec.Validate(spec, buildContext)

	if !quiet {
		fmt.Printf("%s: base image %s, %d findings\n", path, spec.BaseImage, len(findings))
		if spec.Startup != nil {
			fmt.Printf("%s: startup %s\n", path, shellescape.QuoteCommand(spec.Startup.Argv))
		}
	}
	for _, finding := range findings {
		fmt.Printf("%s: %s\n", path, finding)
	}
	return findings, nil
}

package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"mua/internal/driver"
	"mua/internal/ir"
	"mua/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build <file.mua|directory>",
	Short: "Compile a source file or every source file in a directory",
	Long: `Build runs the full pipeline: parse, semantic analysis, and lowering
to the numeric SSA module. With --emit ir the module dump is written to
standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  runBuild,
}

func init() {
	buildCmd.Flags().String("emit", "", "intermediate representation to emit (ir)")
	buildCmd.Flags().Bool("cache", false, "reuse compiled artifacts from the disk cache")
	buildCmd.Flags().Int("jobs", 0, "max parallel workers for directory builds (0=auto)")
}

func runBuild(cmd *cobra.Command, args []string) {
	opts, err := buildOptions(cmd)
	if err != nil {
		os.Exit(exitCLIFailure)
	}
	emit, err := cmd.Flags().GetString("emit")
	if err != nil || (emit != "" && emit != "ir") {
		fmt.Fprintf(os.Stderr, "error: unknown emit target %q\n", emit)
		os.Exit(exitCLIFailure)
	}

	st, err := os.Stat(args[0])
	if err != nil {
		reportOpenFailure(args[0], err)
		os.Exit(exitOpenFailure)
	}

	if st.IsDir() {
		buildDir(cmd, args[0], opts, emit)
		return
	}
	buildFile(cmd, args[0], opts, emit)
}

func buildFile(cmd *cobra.Command, path string, opts driver.Options, emit string) {
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI
	if err != nil {
		reportOpenFailure(path, err)
		os.Exit(exitOpenFailure)
	}

	var cache *driver.DiskCache
	key := project.Digest(sha256.Sum256(content))
	if useCache, _ := cmd.Flags().GetBool("cache"); useCache {
		cache, err = driver.OpenDiskCache("muac")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
		}
		var cached driver.CachedModule
		if hit, cerr := cache.Get(key, &cached); cerr == nil && hit {
			if emit == "ir" {
				fmt.Fprint(os.Stdout, cached.IRDump)
			}
			os.Exit(exitOK)
		}
	}

	res := driver.CompileBytes(path, content, opts)
	showTimings(cmd, res.Timings)

	if !res.ParseOk {
		renderDiagnostics(cmd, res.Bag, res.FileSet)
		os.Exit(exitParseError)
	}
	if !res.SemaOk {
		renderDiagnostics(cmd, res.Bag, res.FileSet)
		os.Exit(exitSemaError)
	}

	var dump strings.Builder
	ir.DumpModule(&dump, res.Module)

	if cache != nil {
		payload := &driver.CachedModule{
			SourcePath:  path,
			ContentHash: key,
			IRDump:      dump.String(),
			Funcs:       len(res.Module.Funcs),
		}
		if err := cache.Put(key, payload); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write disk cache: %v\n", err)
		}
	}

	if emit == "ir" {
		fmt.Fprint(os.Stdout, dump.String())
	}
	os.Exit(exitOK)
}

func buildDir(cmd *cobra.Command, dir string, opts driver.Options, emit string) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil || jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	_, results, err := driver.CompileDir(cmd.Context(), dir, opts, jobs)
	if err != nil {
		reportOpenFailure(dir, err)
		os.Exit(exitOpenFailure)
	}

	exit := exitOK
	for _, res := range results {
		showTimings(cmd, res.Timings)
		switch {
		case !res.ParseOk:
			renderDiagnostics(cmd, res.Bag, res.FileSet)
			if exit == exitOK {
				exit = exitParseError
			}
		case !res.SemaOk:
			renderDiagnostics(cmd, res.Bag, res.FileSet)
			if exit == exitOK {
				exit = exitSemaError
			}
		default:
			if emit == "ir" {
				ir.DumpModule(os.Stdout, res.Module)
			}
		}
	}
	os.Exit(exit)
}

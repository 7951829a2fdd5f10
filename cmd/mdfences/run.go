package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mdfences "github.com/robworks/go-mdfences"
	"github.com/robworks/go-mdfences/internal/config"
	"github.com/robworks/go-mdfences/internal/fileutil"
	"github.com/robworks/go-mdfences/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input files or directories given")
	ErrOutRequired = errors.New("--out is required when processing multiple files")
)

// job is one page to transform: an absolute-ish source path plus the
// relative path it keeps under the output directory.
type job struct {
	src string
	rel string
}

// run resolves configuration, collects pages, and transforms them.
func run(flags *cliFlags, args []string, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	if len(args) == 0 && cfg.Input.DefaultDir != "" {
		args = []string{cfg.Input.DefaultDir}
	}
	if len(args) == 0 {
		return ErrNoInput
	}

	jobs, err := collectJobs(args, cfg.Input.Extensions)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		if !flags.quiet {
			fmt.Fprintln(stderr, "no markdown files found")
		}
		return nil
	}

	outDir := flags.out
	if outDir == "" {
		outDir = cfg.Output.DefaultDir
	}

	preview := flags.preview || cfg.Preview.Enabled
	transform := newTransform(preview, cfg.Preview.Title)

	// Single file without an output directory goes to stdout.
	if outDir == "" {
		if len(jobs) > 1 {
			return ErrOutRequired
		}
		out, err := transformFile(context.Background(), jobs[0].src, transform)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, out)
		return err
	}

	return processAll(jobs, resolveWorkers(flags.workers, cfg.Workers), func(j job) error {
		out, err := transformFile(context.Background(), j.src, transform)
		if err != nil {
			return fmt.Errorf("%s: %w", j.src, err)
		}
		dst := filepath.Join(outDir, outputName(j.rel, preview))
		if err := fileutil.WriteFile(dst, out); err != nil {
			return err
		}
		if flags.verbose && !flags.quiet {
			fmt.Fprintf(stderr, "%s -> %s\n", j.src, dst)
		}
		return nil
	})
}

// resolveConfig merges the config file (if any) with flag overrides.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(flags.extensions) > 0 {
		cfg.Input.Extensions = flags.extensions
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// collectJobs expands files and directories into the page list.
// Directory trees keep their relative layout under the output directory;
// loose files land at the output root.
func collectJobs(args []string, extensions []string) ([]job, error) {
	var jobs []job
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if info.IsDir() {
			rels, err := fileutil.DiscoverMarkdown(arg, extensions)
			if err != nil {
				return nil, err
			}
			for _, rel := range rels {
				jobs = append(jobs, job{src: filepath.Join(arg, rel), rel: rel})
			}
			continue
		}
		if err := fileutil.ValidateMarkdown(arg, extensions); err != nil {
			return nil, err
		}
		jobs = append(jobs, job{src: arg, rel: filepath.Base(arg)})
	}
	return jobs, nil
}

// transformFunc converts one page's markdown to its output text.
type transformFunc func(ctx context.Context, content string) (string, error)

// newTransform builds the page conversion shared by all jobs: the fence
// filter, or the full HTML preview pipeline. Both are safe for concurrent
// use, so a single instance serves the whole batch.
func newTransform(preview bool, previewTitle string) transformFunc {
	if preview {
		conv := pipeline.NewGoldmarkConverter(previewTitle)
		return conv.ToHTML
	}
	svc := mdfences.New()
	return func(ctx context.Context, content string) (string, error) {
		return svc.Transform(ctx, content), nil
	}
}

// transformFile reads and converts one page.
func transformFile(ctx context.Context, path string, transform transformFunc) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return transform(ctx, string(data))
}

// outputName maps a source-relative path to its output filename.
func outputName(rel string, preview bool) string {
	if !preview {
		return rel
	}
	ext := filepath.Ext(rel)
	return strings.TrimSuffix(rel, ext) + ".html"
}

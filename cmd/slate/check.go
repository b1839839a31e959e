package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slate/internal/diagfmt"
	"slate/internal/driver"
	"slate/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path]",
	Short: "Check slate sources for lexical and syntax errors",
	Long: `Check lexes and parses slate sources and reports diagnostics. A file is
checked through the disk cache: rechecking an unchanged file replays the
stored diagnostics. A directory is checked in parallel, every *.sl inside.
With no argument, checks the project source directory from slate.toml,
falling back to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "bypass the disk cache")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory checks (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("show-source", false, "include source lines in diagnostics")
}

func runCheck(cmd *cobra.Command, args []string) error {
	noCache, _ := cmd.Flags().GetBool("no-cache")
	jobs, _ := cmd.Flags().GetInt("jobs")
	showSource, _ := cmd.Flags().GetBool("show-source")
	maxDiag := maxDiagnostics(cmd)

	target := "."
	if len(args) == 1 {
		target = args[0]
	} else if root, ok, err := project.FindProjectRoot("."); err == nil && ok {
		manifestPath, _, _ := project.FindSlateToml(".")
		if m, err := project.LoadManifest(manifestPath); err == nil {
			target = m.SrcDir(root)
			if m.Check.MaxDiagnostics > 0 {
				maxDiag = m.Check.MaxDiagnostics
			}
			if m.Check.Jobs > 0 && jobs == 0 {
				jobs = m.Check.Jobs
			}
		}
	}

	st, err := os.Stat(target)
	if err != nil {
		return err
	}

	opts := diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: showSource,
	}

	if st.IsDir() {
		return checkDir(cmd, target, maxDiag, jobs, opts)
	}
	return checkFile(cmd, target, maxDiag, noCache, opts)
}

func checkFile(cmd *cobra.Command, path string, maxDiag int, noCache bool, opts diagfmt.PrettyOpts) error {
	var cache *driver.DiskCache
	if !noCache {
		// ошибки кэша не фатальны: проверяем без него
		cache, _ = driver.OpenDiskCache("slate")
	}

	result, err := driver.Check(path, cache, maxDiag)
	if err != nil {
		return err
	}

	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)

	if n := result.Bag.ErrorCount(); n > 0 {
		return fmt.Errorf("found %d error(s)", n)
	}
	if !quiet(cmd) {
		suffix := ""
		if result.FromCache {
			suffix = " (cached)"
		}
		fmt.Fprintf(os.Stdout, "%s: ok%s\n", path, suffix)
	}
	return nil
}

func checkDir(cmd *cobra.Command, dir string, maxDiag, jobs int, opts diagfmt.PrettyOpts) error {
	fs, results, err := driver.ParseDir(cmd.Context(), dir, maxDiag, jobs)
	if err != nil {
		return err
	}

	totalErrors := 0
	for _, res := range results {
		if res.Bag.Len() == 0 {
			continue
		}
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, fs, opts)
		totalErrors += res.Bag.ErrorCount()
	}

	if totalErrors > 0 {
		return fmt.Errorf("found %d error(s) in %d file(s)", totalErrors, len(results))
	}
	if !quiet(cmd) {
		fmt.Fprintf(os.Stdout, "%s: %d file(s) ok\n", dir, len(results))
	}
	return nil
}

// Command mydiff creates and applies binary diffs.
//
// Usage:
//
//	mydiff create <old-file> <new-file> [-o diff] [-c chunk-size]
//	mydiff apply <old-file> <diff-file> [-o output]
//	mydiff verify <old-file> <diff-file>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/rosu-ioan/mydiff"
	"github.com/rosu-ioan/mydiff/internal/ui"
)

func usage() {
	fmt.Fprintf(os.Stderr, `mydiff - byte-level binary diff and patch

Usage:
  mydiff create <old-file> <new-file>   generate a diff between two files
  mydiff apply  <old-file> <diff-file>  reconstruct the new file
  mydiff verify <old-file> <diff-file>  check a diff without applying it
  mydiff help                           show this message

Run 'mydiff <command> --help' for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "create":
		err = runCreate(os.Args[2:])
	case "apply":
		err = runApply(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		ui.Errorf("unknown command %q", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}

// checkFile rejects paths that are missing, unreadable, or not regular
// files before any work starts.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// trimExt drops the final extension, if any.
func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func runCreate(args []string) error {
	flags := pflag.NewFlagSet("create", pflag.ExitOnError)
	output := flags.StringP("output", "o", "", "diff file to write (default <old>-<new>.diff)")
	chunkSize := flags.IntP("chunk-size", "c", mydiff.DefaultChunkSize, "streaming chunk size in bytes")
	flags.Parse(args)

	if flags.NArg() != 2 {
		return fmt.Errorf("create needs exactly two arguments: <old-file> <new-file>")
	}
	oldPath, newPath := flags.Arg(0), flags.Arg(1)

	for _, p := range []string{oldPath, newPath} {
		if err := checkFile(p); err != nil {
			return err
		}
	}

	outPath := *output
	if outPath == "" {
		outPath = trimExt(oldPath) + "-" + trimExt(filepath.Base(newPath)) + ".diff"
	}

	ui.Table([]ui.Row{
		{Name: "Old file", Value: oldPath},
		{Name: "New file", Value: newPath},
		{Name: "Diff file", Value: outPath},
	})

	if err := mydiff.Generate(oldPath, newPath, outPath, *chunkSize); err != nil {
		return err
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return err
	}
	ui.Successf("Diff created: %s (%s)", outPath, humanize.IBytes(uint64(info.Size())))
	return nil
}

func runApply(args []string) error {
	flags := pflag.NewFlagSet("apply", pflag.ExitOnError)
	output := flags.StringP("output", "o", "", "file to write (default <old>.patched)")
	flags.Parse(args)

	if flags.NArg() != 2 {
		return fmt.Errorf("apply needs exactly two arguments: <old-file> <diff-file>")
	}
	oldPath, diffPath := flags.Arg(0), flags.Arg(1)

	for _, p := range []string{oldPath, diffPath} {
		if err := checkFile(p); err != nil {
			return err
		}
	}
	if filepath.Ext(diffPath) != ".diff" {
		ui.Warningf("%s does not have a .diff extension", diffPath)
	}

	if err := mydiff.Validate(diffPath); err != nil {
		return err
	}
	if err := mydiff.VerifySource(oldPath, diffPath); err != nil {
		return err
	}

	outPath := *output
	if outPath == "" {
		outPath = oldPath + ".patched"
	}

	if err := mydiff.Apply(oldPath, diffPath, outPath); err != nil {
		return err
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return err
	}
	ui.Successf("Patched file written: %s (%s)", outPath, humanize.IBytes(uint64(info.Size())))
	return nil
}

func runVerify(args []string) error {
	flags := pflag.NewFlagSet("verify", pflag.ExitOnError)
	flags.Parse(args)

	if flags.NArg() != 2 {
		return fmt.Errorf("verify needs exactly two arguments: <old-file> <diff-file>")
	}
	oldPath, diffPath := flags.Arg(0), flags.Arg(1)

	for _, p := range []string{oldPath, diffPath} {
		if err := checkFile(p); err != nil {
			return err
		}
	}
	if filepath.Ext(diffPath) != ".diff" {
		ui.Warningf("%s does not have a .diff extension", diffPath)
	}

	if err := mydiff.Validate(diffPath); err != nil {
		return err
	}
	ui.Successf("Diff structure OK")

	if err := mydiff.VerifySource(oldPath, diffPath); err != nil {
		return err
	}
	ui.Successf("Source digest matches")
	return nil
}

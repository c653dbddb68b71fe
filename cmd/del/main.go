// Command del lists the live files on a FAT12/FAT16 image and
// tombstones the one the user picks, after confirmation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/shubham030/fatrescue/internal/cli"
	"github.com/shubham030/fatrescue/internal/config"
	"github.com/shubham030/fatrescue/internal/display"
	"github.com/shubham030/fatrescue/internal/fat"
	"github.com/shubham030/fatrescue/internal/image"
	"github.com/shubham030/fatrescue/internal/recovery"
)

func main() {
	fs := flag.NewFlagSet("del", flag.ExitOnError)
	opts, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	logger := charmlog.New(os.Stderr)
	logger.SetLevel(levelFor(opts.Verbosity))

	if opts.ImagePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: del -image <path> [-dry-run] [-v|-vv]")
		os.Exit(1)
	}

	mode := image.ReadWrite
	if opts.DryRun {
		mode = image.ReadOnly
	}

	logger.Debug("Opening image", "path", opts.ImagePath, "dry-run", opts.DryRun)
	sess, err := image.Open(opts.ImagePath, mode)
	if err != nil {
		logger.Error("cannot open image", "err", err)
		os.Exit(1)
	}
	defer sess.Close()

	bs, err := fat.ReadBootSector(sess)
	if err != nil {
		logger.Error("cannot read boot sector", "err", err)
		os.Exit(1)
	}
	if !bs.SignatureOK() {
		logger.Warn("boot sector signature missing or corrupt")
	}

	geometry := fat.DeriveGeometry(bs)
	if geometry.FATType != 12 && geometry.FATType != 16 {
		logger.Error("unsupported FAT type", "type", geometry.FATType)
		os.Exit(1)
	}

	logger.Debug("Scanning directory tree")
	sessRec, err := recovery.NewSession(sess, geometry)
	if err != nil {
		logger.Error("scan failed", "err", err)
		os.Exit(1)
	}

	live := recovery.LiveEntries(sessRec.Entries())
	names := make([]string, len(live))
	for i, e := range live {
		names[i] = display.Name(e.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	cli.Menu(os.Stdout, names)

	n, err := cli.PromptSelection(scanner, os.Stdout, "delete", len(live))
	if err != nil {
		logger.Error("reading selection failed", "err", err)
		os.Exit(1)
	}
	if n == 0 {
		return
	}

	target, err := recovery.Select(live, n)
	if err != nil {
		logger.Error("invalid selection", "err", err)
		os.Exit(1)
	}

	ok, err := cli.Confirm(scanner, os.Stdout, "Delete", display.Name(target.Name))
	if err != nil {
		logger.Error("reading confirmation failed", "err", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	if opts.DryRun {
		fmt.Fprintf(os.Stdout, "Would delete %s\n", display.Name(target.Name))
		return
	}

	logger.Debug("Writing tombstone", "name", target.Name, "position", target.BytePosition)
	if err := sessRec.Delete(target); err != nil {
		logger.Error("delete failed", "err", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Deleting %s\n", display.Name(target.Name))
	logger.Info("delete complete", "name", target.Name)
}

func levelFor(verbosity int) charmlog.Level {
	switch {
	case verbosity >= 2:
		return charmlog.DebugLevel
	case verbosity == 1:
		return charmlog.InfoLevel
	default:
		return charmlog.WarnLevel
	}
}

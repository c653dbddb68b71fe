// Command undel lists the deleted files on a FAT12/FAT16 image,
// checks whether the one the user picks is still safely recoverable,
// and if so rewrites its first name byte to revive it.
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
	fs := flag.NewFlagSet("undel", flag.ExitOnError)
	opts, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	logger := charmlog.New(os.Stderr)
	logger.SetLevel(levelFor(opts.Verbosity))

	if opts.ImagePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: undel -image <path> [-dry-run] [-v|-vv]")
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

	deleted := sessRec.Deleted()
	names := make([]string, len(deleted))
	for i, e := range deleted {
		names[i] = display.Name(e.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	cli.Menu(os.Stdout, names)

	n, err := cli.PromptSelection(scanner, os.Stdout, "restore", len(deleted))
	if err != nil {
		logger.Error("reading selection failed", "err", err)
		os.Exit(1)
	}
	if n == 0 {
		return
	}

	target, err := recovery.Select(deleted, n)
	if err != nil {
		logger.Error("invalid selection", "err", err)
		os.Exit(1)
	}

	ok, err := cli.Confirm(scanner, os.Stdout, "Restore", display.Name(target.Name))
	if err != nil {
		logger.Error("reading confirmation failed", "err", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	valid, err := sessRec.Validate(target)
	if err != nil {
		logger.Error("validation failed", "err", err)
		os.Exit(1)
	}
	if !valid {
		fmt.Fprintln(os.Stdout, "Unfortunately, this file cannot be restored.")
		logger.Warn("candidate failed validation", "name", target.Name)
		return
	}

	letter, err := cli.PromptLetter(scanner, os.Stdout)
	if err != nil {
		logger.Error("reading replacement letter failed", "err", err)
		os.Exit(1)
	}

	if opts.DryRun {
		fmt.Fprintf(os.Stdout, "Would restore %s\n", display.Name(target.Name))
		return
	}

	fmt.Fprintf(os.Stdout, "Restoring %s\n", display.Name(target.Name))
	logger.Debug("Writing restored first byte", "name", target.Name, "position", target.BytePosition)
	if err := sessRec.Restore(target, letter); err != nil {
		logger.Error("restore failed", "err", err)
		os.Exit(1)
	}

	logger.Info("restore complete", "name", target.Name)
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

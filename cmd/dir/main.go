// Command dir prints a boot-sector summary and a full directory
// listing (live and deleted entries alike) for a FAT12/FAT16 disk
// image, the read-only counterpart of del/undel.
package main

import (
	"flag"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/shubham030/fatrescue/internal/config"
	"github.com/shubham030/fatrescue/internal/display"
	"github.com/shubham030/fatrescue/internal/fat"
	"github.com/shubham030/fatrescue/internal/image"
	"github.com/shubham030/fatrescue/internal/tui"
)

func main() {
	fs := flag.NewFlagSet("dir", flag.ExitOnError)
	opts := &config.Options{}
	verbose, veryVerbose := config.Register(fs, opts)
	fs.BoolVar(&opts.TUI, "tui", false, "Browse the listing interactively")
	fs.BoolVar(&opts.Humanize, "h", false, "Print human-readable sizes")
	fs.Parse(os.Args[1:])
	config.Finish(opts, *verbose, *veryVerbose)

	logger := charmlog.New(os.Stderr)
	logger.SetLevel(levelFor(opts.Verbosity))

	if opts.ImagePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: dir -image <path> [-tui] [-h] [-v|-vv]")
		os.Exit(1)
	}

	logger.Debug("Opening image", "path", opts.ImagePath)
	sess, err := image.Open(opts.ImagePath, image.ReadOnly)
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
	display.PrintBootSector(os.Stdout, bs, geometry)
	fmt.Fprintln(os.Stdout)

	if geometry.FATType != 12 && geometry.FATType != 16 {
		logger.Error("unsupported FAT type", "type", geometry.FATType)
		os.Exit(1)
	}

	logger.Debug("Scanning directory tree")
	entries, err := fat.Scan(sess, geometry)
	if err != nil {
		logger.Warn("scan reported warnings", "err", err)
	}

	if opts.TUI {
		if err := tui.Run(entries, geometry); err != nil {
			logger.Error("tui exited with an error", "err", err)
			os.Exit(1)
		}
		return
	}

	display.PrintListing(os.Stdout, entries, opts.Humanize)
	logger.Info("listing complete", "entries", len(entries))
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

// Package config parses the flags each cmd binary accepts into a
// shared Options struct. There is no config file and no environment
// variable discovery — everything comes from the command line, the
// way the teacher's cmd/recover/main.go does it.
package config

import "flag"

// Options holds the subset of command-line flags common to dir, del,
// and undel. Not every binary uses every field (Humanize and TUI only
// make sense for dir).
type Options struct {
	ImagePath string
	Verbosity int
	DryRun    bool
	TUI       bool
	Humanize  bool
}

// Register binds the flags common to every binary (-image, -dry-run,
// -v, -vv) onto fs and opts. Callers register any binary-specific
// flags (dir's -tui and -h) directly onto opts's fields before calling
// fs.Parse themselves, then call Finish to fold -v/-vv into Verbosity.
func Register(fs *flag.FlagSet, opts *Options) (verbose, veryVerbose *bool) {
	fs.StringVar(&opts.ImagePath, "image", "", "Path to the FAT12/FAT16 disk image")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Describe the action without writing to the image")
	verbose = fs.Bool("v", false, "Enable info logging")
	veryVerbose = fs.Bool("vv", false, "Enable debug logging")
	return verbose, veryVerbose
}

// Parse registers the shared flags on fs, parses args, and returns the
// populated Options. Use this when the binary has no flags beyond the
// shared set (del, undel); dir calls Register/fs.Parse/Finish directly
// so it can add -tui and -h to the same FlagSet first.
func Parse(fs *flag.FlagSet, args []string) (*Options, error) {
	opts := &Options{}
	verbose, veryVerbose := Register(fs, opts)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	Finish(opts, *verbose, *veryVerbose)
	return opts, nil
}

// Finish folds the -v/-vv booleans into Verbosity after fs.Parse runs.
func Finish(opts *Options, verbose, veryVerbose bool) {
	switch {
	case veryVerbose:
		opts.Verbosity = 2
	case verbose:
		opts.Verbosity = 1
	}
}

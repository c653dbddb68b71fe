package config

import (
	"flag"
	"testing"
)

func TestParsePopulatesImagePath(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts, err := Parse(fs, []string{"-image", "disk.img"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.ImagePath != "disk.img" {
		t.Errorf("ImagePath = %q, want disk.img", opts.ImagePath)
	}
	if opts.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0 by default", opts.Verbosity)
	}
}

func TestParseVerbosityLevels(t *testing.T) {
	cases := []struct {
		args []string
		want int
	}{
		{[]string{}, 0},
		{[]string{"-v"}, 1},
		{[]string{"-vv"}, 2},
		{[]string{"-v", "-vv"}, 2},
	}
	for _, c := range cases {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		opts, err := Parse(fs, c.args)
		if err != nil {
			t.Fatalf("Parse(%v): %v", c.args, err)
		}
		if opts.Verbosity != c.want {
			t.Errorf("Parse(%v).Verbosity = %d, want %d", c.args, opts.Verbosity, c.want)
		}
	}
}

func TestParseDryRun(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts, err := Parse(fs, []string{"-dry-run"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !opts.DryRun {
		t.Errorf("DryRun = false, want true")
	}
}

func TestRegisterLetsCallersAddExtraFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := &Options{}
	verbose, veryVerbose := Register(fs, opts)
	fs.BoolVar(&opts.TUI, "tui", false, "launch the browser")
	fs.BoolVar(&opts.Humanize, "h", false, "humanize sizes")

	if err := fs.Parse([]string{"-tui", "-h", "-v"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	Finish(opts, *verbose, *veryVerbose)

	if !opts.TUI || !opts.Humanize {
		t.Errorf("TUI=%v Humanize=%v, want both true", opts.TUI, opts.Humanize)
	}
	if opts.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", opts.Verbosity)
	}
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"rsc.io/getopt"

	"github.com/driftwm/scrollwm/internal/config"
	"github.com/driftwm/scrollwm/internal/engine"
	"github.com/driftwm/scrollwm/internal/layout"
)

var simScript = flag.String("script", "", "Script file of operations to run (default: stdin)")
var simVerbose = flag.Bool("verbose", false, "Print a snapshot after every line")
var simMonitor = flag.String("monitor", "1920x1080@1", "Initial monitor size as WxH@SCALE")
var simPath = flag.String("path", "", "Config file path (default: ~/.config/scrollwm/config.yaml)")

// boolFlag mirrors flag.boolFlag so parseSimFlags can special-case boolean
// long options the same way flag.Parse does.
type boolFlag interface {
	IsBoolFlag() bool
}

func init() {
	getopt.CommandLine.Init("scrollwm sim", flag.ContinueOnError)
	getopt.CommandLine.SetOutput(io.Discard)
	getopt.Alias("s", "script")
	getopt.Alias("v", "verbose")
	getopt.Alias("m", "monitor")
	getopt.Alias("p", "path")
	getopt.CommandLine.Usage = func() {}
}

// parseSimFlags understands intermixed short (-v) and long (--verbose)
// options ahead of the first non-flag argument, the way a getopt-based CLI
// is expected to.
func parseSimFlags(f *getopt.FlagSet, args []string) error {
	for len(args) > 0 {
		arg := args[0]
		if len(arg) < 2 || arg[0] != '-' {
			break
		}
		args = args[1:]
		if arg[:2] == "--" {
			if arg == "--" {
				break
			}
			name := arg[2:]
			value := ""
			haveValue := false
			if i := strings.Index(name, "="); i >= 0 {
				name, value = name[:i], name[i+1:]
				haveValue = true
			}
			fg := f.Lookup(name)
			if fg == nil {
				if name == "h" || name == "help" {
					return flag.ErrHelp
				}
				return fmt.Errorf("flag provided but not defined: --%s", name)
			}
			if b, ok := fg.Value.(boolFlag); ok && b.IsBoolFlag() {
				if haveValue {
					if err := fg.Value.Set(value); err != nil {
						return fmt.Errorf("invalid boolean value %q for --%s: %v", value, name, err)
					}
				} else if err := fg.Value.Set("true"); err != nil {
					return fmt.Errorf("invalid boolean flag %s: %v", name, err)
				}
				continue
			}
			if !haveValue {
				if len(args) == 0 {
					return fmt.Errorf("missing argument for --%s", name)
				}
				value, args = args[0], args[1:]
			}
			if err := fg.Value.Set(value); err != nil {
				return fmt.Errorf("invalid value %q for flag --%s: %v", value, name, err)
			}
			continue
		}

		for arg = arg[1:]; arg != ""; {
			r, size := utf8.DecodeRuneInString(arg)
			if r == utf8.RuneError && size == 1 {
				return fmt.Errorf("invalid UTF8 in command-line flags")
			}
			name := arg[:size]
			arg = arg[size:]
			fg := f.Lookup(name)
			if fg == nil {
				if name == "h" {
					return flag.ErrHelp
				}
				return fmt.Errorf("flag provided but not defined: -%s", name)
			}
			if b, ok := fg.Value.(boolFlag); ok && b.IsBoolFlag() {
				if err := fg.Value.Set("true"); err != nil {
					return fmt.Errorf("invalid boolean flag %s: %v", name, err)
				}
				continue
			}
			if arg == "" {
				if len(args) == 0 {
					return fmt.Errorf("missing argument for -%s", name)
				}
				arg, args = args[0], args[1:]
			}
			if err := fg.Value.Set(arg); err != nil {
				return fmt.Errorf("invalid value %q for flag -%s: %v", arg, name, err)
			}
			break
		}
	}

	f.FlagSet.Parse(append([]string{"--"}, args...))
	return nil
}

func runSim(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: scrollwm sim [-s FILE] [-v] [-m WxH@SCALE] [-p PATH]")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Each script line is one of:")
		fmt.Fprintln(os.Stdout, "  open APPID [floating]")
		fmt.Fprintln(os.Stdout, "  close ID")
		fmt.Fprintln(os.Stdout, "  op NAME [ARGS...]")
		fmt.Fprintln(os.Stdout, "  advance MS")
		fmt.Fprintln(os.Stdout, "  snapshot")
		return 0
	}

	err := parseSimFlags(&getopt.CommandLine, args)
	if err == flag.ErrHelp {
		fmt.Fprintln(os.Stderr, "Usage: scrollwm sim [-s FILE] [-v] [-m WxH@SCALE] [-p PATH]")
		return 0
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var cfg *config.Config
	if *simPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(*simPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	eng := engine.New(cfg, nil, nil)

	size, scale, err := parseMonitorSpec(*simMonitor)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	eng.AddMonitor("sim-0", size, scale, config.Struts{})

	var src io.Reader = os.Stdin
	if *simScript != "" {
		f, err := os.Open(*simScript)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		src = f
	}

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runSimLine(eng, line); err != nil {
			fmt.Fprintf(os.Stderr, "sim: %v\n", err)
			return 1
		}
		if *simVerbose {
			fmt.Println(eng.Snapshot())
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(eng.Snapshot())
	return 0
}

func runSimLine(eng *engine.Engine, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "open":
		if len(fields) < 2 {
			return fmt.Errorf("open requires an app id")
		}
		isChild := len(fields) > 2 && fields[2] == "floating"
		_, err := eng.OpenWindow(fields[1], fields[1], 0, 0, 0, 0, isChild)
		return err
	case "close":
		if len(fields) < 2 {
			return fmt.Errorf("close requires a window id")
		}
		id, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return err
		}
		return eng.CloseWindow(layout.WindowID(id))
	case "op":
		if len(fields) < 2 {
			return fmt.Errorf("op requires an operation name")
		}
		return eng.Op(fields[1], fields[2:])
	case "advance":
		if len(fields) < 2 {
			return fmt.Errorf("advance requires a millisecond count")
		}
		ms, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return err
		}
		eng.Advance(ms)
		return nil
	case "snapshot":
		fmt.Println(eng.Snapshot())
		return nil
	default:
		return fmt.Errorf("unknown script command: %s", fields[0])
	}
}

func parseMonitorSpec(spec string) (layout.Size, float64, error) {
	scale := 1.0
	dims := spec
	if i := strings.Index(spec, "@"); i >= 0 {
		dims = spec[:i]
		s, err := strconv.ParseFloat(spec[i+1:], 64)
		if err != nil {
			return layout.Size{}, 0, fmt.Errorf("invalid monitor scale %q: %w", spec[i+1:], err)
		}
		scale = s
	}
	i := strings.Index(dims, "x")
	if i < 0 {
		return layout.Size{}, 0, fmt.Errorf("invalid monitor size %q, want WxH", dims)
	}
	w, err := strconv.ParseFloat(dims[:i], 64)
	if err != nil {
		return layout.Size{}, 0, fmt.Errorf("invalid monitor width %q: %w", dims[:i], err)
	}
	h, err := strconv.ParseFloat(dims[i+1:], 64)
	if err != nil {
		return layout.Size{}, 0, fmt.Errorf("invalid monitor height %q: %w", dims[i+1:], err)
	}
	return layout.Size{W: w, H: h}, scale, nil
}

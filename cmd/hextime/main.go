package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SimonWoodburyForget/hextime/chime"
	"github.com/SimonWoodburyForget/hextime/clock"
	"github.com/SimonWoodburyForget/hextime/constant"
	"github.com/SimonWoodburyForget/hextime/core"
	"github.com/SimonWoodburyForget/hextime/encode"
	"github.com/SimonWoodburyForget/hextime/palette"
	"github.com/SimonWoodburyForget/hextime/refresh"
	"github.com/SimonWoodburyForget/hextime/service"
	"github.com/SimonWoodburyForget/hextime/status"
	"github.com/SimonWoodburyForget/hextime/terminal"
)

// options is the resolved command line
type options struct {
	mode     encode.Mode
	depth    terminal.ColorDepth
	scheme   palette.Scheme
	next     time.Duration
	interval time.Duration
	once     bool
	chime    bool
	volume   float64
	debug    bool
}

// errUsage marks a command line that cannot be run; main exits 2
var errUsage = errors.New("usage")

// parseOptions accepts the mode token before or after the flags
func parseOptions(args []string, stderr io.Writer) (options, error) {
	var (
		opts   options
		color  string
		scheme string
	)

	fs := flag.NewFlagSet("hextime", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&color, "color", "basic", "ANSI color depth for term mode: auto, basic, 256, truecolor")
	fs.StringVar(&scheme, "scheme", "four", "Main line scheme: four (all bytes), two (low bytes only)")
	fs.DurationVar(&opts.next, "next", 0, "Also show the next multiple of this duration (0 disables)")
	fs.DurationVar(&opts.interval, "interval", constant.RefreshInterval, "Sleep after each rendered line")
	fs.BoolVar(&opts.once, "once", false, "Print one line and exit")
	fs.BoolVar(&opts.chime, "chime", false, "Ring a bell when the minutes segment rolls over")
	fs.Float64Var(&opts.volume, "volume", constant.DefaultChimeVolume, "Chime volume in [0,1]")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: hextime [flags] <mode>\n\nModes: %v\n\nFlags:\n", encode.Tokens())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return opts, fmt.Errorf("%w: missing mode", errUsage)
	}
	token := fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return opts, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return opts, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	var err error
	if opts.mode, err = encode.ParseMode(token); err != nil {
		fs.Usage()
		return opts, fmt.Errorf("%w: %w", errUsage, err)
	}
	if opts.depth, err = terminal.ParseDepth(color); err != nil {
		return opts, fmt.Errorf("%w: %w", errUsage, err)
	}
	if opts.scheme, err = palette.ParseScheme(scheme); err != nil {
		return opts, fmt.Errorf("%w: %w", errUsage, err)
	}
	if opts.next < 0 {
		return opts, fmt.Errorf("%w: -next must not be negative", errUsage)
	}
	if opts.next > 0 && opts.next < time.Second {
		return opts, fmt.Errorf("%w: -next must be at least 1s", errUsage)
	}
	if opts.interval <= 0 {
		return opts, fmt.Errorf("%w: -interval must be positive", errUsage)
	}
	if opts.volume < 0 || opts.volume > 1 {
		return opts, fmt.Errorf("%w: -volume must be in [0,1]", errUsage)
	}
	return opts, nil
}

func main() {
	// Panic Recovery: overflow and any bug leave the terminal usable
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "hextime: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	closeLog := func() {
		if logFile != nil {
			logFile.Close()
		}
	}
	log.Printf("hextime: mode=%v depth=%v scheme=%v next=%v interval=%v",
		opts.mode, opts.depth, opts.scheme, opts.next, opts.interval)

	metrics := status.NewRegistry()
	tty := terminal.IsTerminal(os.Stdout)
	cursor := terminal.NewCursor(tty)
	core.SetCrashCursor(cursor)
	out := terminal.NewOutput(os.Stdout)
	log.Printf("hextime: stdout tty=%v", tty)

	cfg := refresh.Config{
		Encoder:  encode.New(opts.mode, opts.depth),
		Scheme:   opts.scheme,
		Next:     opts.next,
		Interval: opts.interval,
		Cursor:   cursor,
		Metrics:  metrics,
	}

	if opts.once {
		loop := refresh.New(clock.NewSource(nil), os.Stdout, cfg)
		err := loop.Once()
		closeLog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "hextime: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var services service.Group
	if opts.chime {
		bell := chime.NewService()
		if err := bell.Init(opts.volume); err != nil {
			fmt.Fprintf(os.Stderr, "hextime: %v\n", err)
			os.Exit(2)
		}
		services.Add(bell)
		cfg.OnRollover = func(prev, cur clock.Timestamp) {
			log.Printf("hextime: rollover %s -> %s at %s", prev, cur, cur.Time().Format(time.RFC3339))
			bell.Ring()
		}
	}
	services.Start(func(s service.Service, err error) {
		// Audio is optional; keep the clock running without it
		log.Printf("hextime: service %s unavailable: %v", s.Name(), err)
	})

	shutdown := func() {
		services.Stop()
		log.Printf("hextime: exiting, %s", metrics.Summary())
		closeLog()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	core.Go(func() {
		sig := <-sigs
		log.Printf("hextime: received %v", sig)
		// The loop may still be rendering; Finish makes these the last bytes on stdout
		out.Finish(func(w io.Writer) error {
			if err := cursor.Restore(w); err != nil {
				return err
			}
			if opts.mode != encode.MarkupTag {
				// Keep the last line visible above the shell prompt
				_, err := w.Write([]byte{'\n'})
				return err
			}
			return nil
		})
		shutdown()
		os.Exit(0)
	})

	loop := refresh.New(clock.NewSource(nil), out, cfg)
	if err := loop.Run(); err != nil {
		out.Finish(cursor.Restore)
		fmt.Fprintf(os.Stderr, "hextime: %v\n", err)
		shutdown()
		os.Exit(1)
	}
}

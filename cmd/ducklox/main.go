package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/wildduck2/ducklox/config"
	"github.com/wildduck2/ducklox/pkg/lox"
	"github.com/wildduck2/ducklox/pkg/lox/repl"
)

// Version is set at compile time via -ldflags
var Version = "0.2.0"

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")
	jsonFlag        = flag.Bool("json", false, "Emit tokens and diagnostics as JSON")

	// Scan flags
	evalFlag     = flag.String("e", "", "Scan a code string")
	evalLongFlag = flag.String("eval", "", "Scan a code string")
	checkFlag    = flag.Bool("check", false, "Report diagnostics only, no token dump")
	watchFlag    = flag.Bool("w", false, "Rescan the file whenever it changes")
	watchLong    = flag.Bool("watch", false, "Rescan the file whenever it changes")

	configFlag = flag.String("config", config.DefaultPath, "Path to config file")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}
	if *versionFlag || *versionLongFlag {
		fmt.Printf("ducklox version %s\n", Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	format := cfg.Output.Format
	if *jsonFlag {
		format = lox.FormatJSON
	}

	// Get eval code (prefer -e over --eval if both set)
	evalCode := *evalFlag
	if evalCode == "" {
		evalCode = *evalLongFlag
	}

	// Mode dispatch
	switch {
	case evalCode != "":
		os.Exit(scanString(evalCode, format))
	case *checkFlag:
		files := flag.Args()
		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --check requires at least one file")
			os.Exit(2)
		}
		os.Exit(checkFiles(files, format))
	case *watchFlag || *watchLong:
		if len(flag.Args()) != 1 {
			fmt.Fprintln(os.Stderr, "Error: --watch requires exactly one file")
			os.Exit(2)
		}
		watchFile(flag.Args()[0], format, cfg.Watch.DebounceMS)
	case len(flag.Args()) > 0:
		os.Exit(scanFiles(flag.Args(), format))
	default:
		repl.Start(os.Stdin, os.Stdout, Version, cfg.REPL.HistoryFile)
	}
}

// scanString scans inline code and dumps the token stream.
func scanString(code, format string) int {
	driver := lox.New(os.Stdout, os.Stderr)
	driver.Format = format
	tokens := driver.Run(code, "<eval>")
	if err := driver.PrintTokens(tokens); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if driver.HasError {
		return 1
	}
	return 0
}

// scanFiles scans each file and dumps its token stream. Lexical errors are
// reported but do not stop the remaining files from being scanned.
func scanFiles(files []string, format string) int {
	driver := lox.New(os.Stdout, os.Stderr)
	driver.Format = format
	for _, file := range files {
		tokens, err := driver.RunFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := driver.PrintTokens(tokens); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if driver.HasError {
		return 1
	}
	return 0
}

// checkFiles scans files for diagnostics without dumping tokens.
func checkFiles(files []string, format string) int {
	driver := lox.New(os.Stdout, os.Stderr)
	driver.Format = format
	for _, file := range files {
		if _, err := driver.RunFile(file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if driver.HasError {
		return 1
	}
	fmt.Println("OK")
	return 0
}

// watchFile scans the file once, then rescans on every change until
// interrupted.
func watchFile(file, format string, debounceMS int) {
	rescan := func(path string) {
		fmt.Printf("--- %s (%s)\n", path, time.Now().Format(time.TimeOnly))
		driver := lox.New(os.Stdout, os.Stderr)
		driver.Format = format
		tokens, err := driver.RunFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		driver.PrintTokens(tokens)
	}

	rescan(file)

	w, err := NewWatcher(file, time.Duration(debounceMS)*time.Millisecond, rescan, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Fprintf(os.Stderr, "watching %s (Ctrl+C to stop)\n", file)
	w.Run(ctx)
}

func printHelp() {
	fmt.Printf(`ducklox - Lox scanner version %s

Usage:
  ducklox [options] [file ...]

Options:
  -e, --eval <code>   Scan a code string and print its tokens
      --check         Report diagnostics only; exit 1 if any errors
  -w, --watch <file>  Rescan the file whenever it changes
      --json          Emit tokens and diagnostics as JSON
      --config <path> Config file (default %s)
  -V, --version       Show version information
  -h, --help          Show this help message

With no arguments, ducklox starts an interactive token REPL.
`, Version, config.DefaultPath)
}

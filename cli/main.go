package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"

	"github.com/fairbnb/image-integrity/core"
	"github.com/fairbnb/image-integrity/core/exif"
	"github.com/fairbnb/image-integrity/server"
)

func usage() {
	fmt.Println(`Usage:
  integrity analyze <image.jpg> [-json] [-verbose]   score an image
  integrity inspect <image.jpg> [-json]              dump the full EXIF tag table
  integrity serve [-config <file>]                   run the HTTP service`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(os.Args[2:])
	case "inspect":
		runInspect(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	default:
		usage()
	}
}

func runAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	jsonMode := fs.Bool("json", false, "emit JSON")
	verbose := fs.Bool("verbose", false, "include extracted tags")
	path, rest := splitPath(args)
	fs.Parse(rest)
	if path == "" {
		usage()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	res := core.AnalyzeBytes(data, path)
	p := core.NewPrinter(*jsonMode, *verbose)
	p.PrintResult(path, core.DetectFormat(data), res)
}

// runInspect dumps every string tag via the full ifd-v2 strategy. This is
// a viewing aid only; scores always come from the scan strategy.
func runInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	jsonMode := fs.Bool("json", false, "emit JSON")
	path, rest := splitPath(args)
	fs.Parse(rest)
	if path == "" {
		usage()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	tags, ok := exif.ScanFull(data)
	if !ok {
		log.Fatal("no EXIF metadata found")
	}
	if *jsonMode {
		b, err := sonic.ConfigDefault.MarshalIndent(tags, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(b))
		return
	}
	fmt.Printf("EXIF Metadata (%s):\n", exif.StrategyFull)
	for k, v := range tags {
		fmt.Printf("  %-24s %s\n", k+":", v)
	}
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "", "YAML config file")
	fs.Parse(args)

	cfg, err := server.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := server.New(cfg, logger).Run(); err != nil {
		log.Fatal(err)
	}
}

// splitPath separates the positional file argument from the flags so both
// "analyze foo.jpg -json" and "analyze -json foo.jpg" work.
func splitPath(args []string) (string, []string) {
	path := ""
	rest := make([]string, 0, len(args))
	for _, a := range args {
		if path == "" && len(a) > 0 && a[0] != '-' {
			path = a
			continue
		}
		rest = append(rest, a)
	}
	return path, rest
}

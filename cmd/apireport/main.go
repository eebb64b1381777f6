package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ben-polinsky/rushstack/apimodel"
	"github.com/ben-polinsky/rushstack/apireport"
	"github.com/ben-polinsky/rushstack/internal/toolrunner"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "run":
		runCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `apireport CLI

Usage:
  apireport generate -model snapshot.json -o out.api.json [-config apireport.yaml] [-order declaration|lexical] [-v]
  apireport validate file.api.json [...]
  apireport run [-warnings-as-errors] -- tool [args...]`)
}

// fileConfig mirrors the optional YAML configuration file. Flags given on
// the command line override file values.
type fileConfig struct {
	Model            string `yaml:"model"`
	Output           string `yaml:"output"`
	Order            string `yaml:"order"`
	WarningsAsErrors bool   `yaml:"warningsAsErrors"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func generateCmd(args []string) {
	fs := newFlagSet("generate")
	var model, out, configPath, order string
	var verbose bool
	fs.StringVar(&model, "model", "", "path to the analyzed model snapshot (JSON)")
	fs.StringVar(&out, "o", "", "output path for the api document")
	fs.StringVar(&configPath, "config", "", "optional YAML config file")
	fs.StringVar(&order, "order", "", "member order policy: declaration|lexical")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fatalf("%v", err)
		}
		if model == "" {
			model = cfg.Model
		}
		if out == "" {
			out = cfg.Output
		}
		if order == "" {
			order = cfg.Order
		}
	}
	if model == "" || out == "" {
		fs.Usage()
		os.Exit(2)
	}

	policy, err := apimodel.ParseOrderPolicy(order)
	if err != nil {
		fatalf("%v", err)
	}

	log := newLogger(verbose)
	log.Debug("loading model snapshot", "path", model)
	root, err := apimodel.LoadSnapshot(model)
	if err != nil {
		fatalf("%v", err)
	}

	log.Debug("writing api document", "path", out, "order", policy.String())
	gen := apireport.New(apireport.WithOrder(policy))
	if err := gen.WriteDocument(out, root); err != nil {
		if iss, ok := apireport.AsIssues(err); ok {
			for _, is := range iss {
				log.Error("schema violation", "path", is.Path, "keyword", is.Keyword, "detail", is.Message)
			}
		}
		fatalf("%v", err)
	}
	log.Debug("api document written", "path", out)
}

func validateCmd(args []string) {
	fs := newFlagSet("validate")
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	failed := false
	for _, f := range files {
		if err := apireport.ValidateFile(f); err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		fmt.Printf("%s: ok\n", f)
	}
	if failed {
		os.Exit(1)
	}
}

func runCmd(args []string) {
	fs := newFlagSet("run")
	var warningsAsErrors bool
	fs.BoolVar(&warningsAsErrors, "warnings-as-errors", false, "treat tool warnings as errors")
	_ = fs.Parse(args)
	argv := fs.Args()
	if len(argv) > 0 && argv[0] == "--" {
		argv = argv[1:]
	}
	if len(argv) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	res, err := toolrunner.Run(context.Background(), argv, toolrunner.Options{
		WarningsAsErrors: warningsAsErrors,
	})
	if err != nil {
		fatalf("%v", err)
	}
	if res.Warnings > 0 {
		fmt.Fprintf(os.Stderr, "%s completed with %d warnings\n", argv[0], res.Warnings)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/app"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/config"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "buzzerbeaters: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	reportPath string
	matchID    int64
	pretty     bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("buzzerbeaters", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.reportPath, "report", "", "path to a match report JSON document, - for stdin")
	fs.Int64Var(&opts.matchID, "matchid", 0, "analyze the stored report of this match using the configured storage")
	fs.BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch {
	case opts.reportPath == "" && opts.matchID == 0:
		fs.Usage()
		return options{}, fmt.Errorf("one of --report or --matchid is required")
	case opts.reportPath != "" && opts.matchID != 0:
		return options{}, fmt.Errorf("--report and --matchid are mutually exclusive")
	case opts.matchID < 0:
		return options{}, fmt.Errorf("--matchid must be > 0")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	var analysis buzzerbeater.Analysis
	if opts.reportPath != "" {
		analysis, err = analyzeFile(ctx, opts.reportPath, stdin, logging.New(logging.LevelWarn, logging.FormatConsole, stderr))
	} else {
		analysis, err = analyzeStored(ctx, opts.matchID, stderr)
	}
	if err != nil {
		return err
	}

	return writeAnalysis(stdout, analysis, opts.pretty)
}

func analyzeFile(ctx context.Context, path string, stdin io.Reader, logger *logging.Logger) (buzzerbeater.Analysis, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return buzzerbeater.Analysis{}, fmt.Errorf("read report: %w", err)
	}

	var report playbyplay.Report
	if err := sonic.Unmarshal(raw, &report); err != nil {
		return buzzerbeater.Analysis{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	svc := usecase.NewBuzzerbeaterService(usecase.BuzzerbeaterServiceDeps{Logger: logger}, usecase.BuzzerbeaterServiceConfig{})
	return svc.AnalyzeReport(ctx, report)
}

func analyzeStored(ctx context.Context, matchID int64, stderr io.Writer) (buzzerbeater.Analysis, error) {
	cfg, err := config.Load()
	if err != nil {
		return buzzerbeater.Analysis{}, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogLevel, logging.FormatConsole, stderr)
	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return buzzerbeater.Analysis{}, err
	}
	defer func() {
		if err := container.Close(context.Background()); err != nil {
			logger.Warn("close resources failed", "error", err)
		}
	}()

	return container.BuzzerbeaterService.FindByMatch(ctx, matchID)
}

func writeAnalysis(w io.Writer, analysis buzzerbeater.Analysis, pretty bool) error {
	if analysis.Hits == nil {
		analysis.Hits = []buzzerbeater.Hit{}
	}

	var (
		out []byte
		err error
	)
	if pretty {
		out, err = sonic.ConfigStd.MarshalIndent(analysis, "", "  ")
	} else {
		out, err = sonic.Marshal(analysis)
	}
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

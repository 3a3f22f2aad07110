package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"git.lost.host/meutraa/tempo/internal/config"
	"git.lost.host/meutraa/tempo/internal/game"
	"git.lost.host/meutraa/tempo/internal/parser"
	"git.lost.host/meutraa/tempo/internal/replay"
	"git.lost.host/meutraa/tempo/internal/score"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app   = kingpin.New("tempo", "Rhythm game timing engine").Version("0.3.0")
	flags = config.Register(app)

	playCmd   = app.Command("play", "Play a chart")
	playChart = playCmd.Arg("chart", "Chart file (.toml, .yaml)").Required().ExistingFile()

	replayCmd   = app.Command("replay", "Re-score the recorded inputs of a chart")
	replayChart = replayCmd.Arg("chart", "Chart file (.toml, .yaml)").Required().ExistingFile()

	inspectCmd   = app.Command("inspect", "Print the notes of a chart in spawn order")
	inspectChart = inspectCmd.Arg("chart", "Chart file (.toml, .yaml)").Required().ExistingFile()
)

// Errors are also logged once the logger exists, but play logs to a file so
// they are repeated on stderr.
func main() {
	if err := run(os.Args[1:]); nil != err {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	command, err := app.Parse(args)
	if nil != err {
		return err
	}

	cfg, err := flags.Config()
	if nil != err {
		return err
	}
	// The terminal belongs to the renderer while playing
	if command == playCmd.FullCommand() && cfg.Logging.File == "" {
		cfg.Logging.File = "tempo.log"
	}

	log, err := newLogger(cfg.Logging)
	if nil != err {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	defer log.Sync()

	if err := dispatch(command, cfg, log); nil != err {
		fields := []zap.Field{zap.String("command", command), zap.Error(err)}
		switch {
		case errors.Is(err, parser.ErrMalformed):
			fields = append(fields, zap.String("kind", "malformed"))
		case errors.Is(err, parser.ErrIO):
			fields = append(fields, zap.String("kind", "io"))
		}
		log.Error("command failed", fields...)
		return err
	}
	return nil
}

func dispatch(command string, cfg *config.Config, log *zap.Logger) error {
	psr := &parser.DefaultParser{Playfield: cfg.Playfield}
	load := func(file string) (*game.Chart, error) {
		chart, err := psr.Parse(file)
		if nil != err {
			return nil, err
		}
		log.Info("loaded chart", zap.String("name", chart.Name), zap.Int("notes", chart.Len()))
		return chart, nil
	}

	switch command {
	case playCmd.FullCommand():
		chart, err := load(*playChart)
		if nil != err {
			return err
		}
		return NewProgram(cfg, chart, log).Run()
	case replayCmd.FullCommand():
		chart, err := load(*replayChart)
		if nil != err {
			return err
		}
		return replayHistories(os.Stdout, cfg, chart, log)
	case inspectCmd.FullCommand():
		chart, err := load(*inspectChart)
		if nil != err {
			return err
		}
		inspect(os.Stdout, chart)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if cfg.File == "" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}

func inspect(w io.Writer, chart *game.Chart) {
	fmt.Fprintf(w, "%v (%v)\n", chart.Name, chart.Audio)
	fmt.Fprintf(w, "%5v  %8v  %8v  %-6v  %-5v\n", "#", "spawn", "click", "speed", "dir")
	for i, n := range chart.Notes {
		fmt.Fprintf(w, "%5v  %8.3f  %8.3f  %-6v  %-5v\n", i, n.SpawnTime, n.ClickTime, n.Speed, n.Direction)
	}
	for _, d := range game.Directions {
		fmt.Fprintf(w, "%6v:  %v\n", d, chart.NoteCounts[d])
	}
}

func replayHistories(w io.Writer, cfg *config.Config, chart *game.Chart, log *zap.Logger) error {
	store, err := score.OpenStore(cfg.History.Path, log)
	if nil != err {
		return err
	}
	defer store.Close()

	histories, err := store.Load(chart)
	if nil != err {
		return err
	}
	if len(histories) == 0 {
		fmt.Fprintf(w, "no recorded inputs for %v\n", chart.Name)
		return nil
	}

	fmt.Fprintf(w, "%5v  %7v  %8v  %6v  %7v  %7v\n", "id", "score", "corrects", "fails", "mean", "stdev")
	for i := range histories {
		h := &histories[i]
		result, err := replay.Run(chart, h, log)
		if nil != err {
			log.Warn("unable to replay history", zap.Int64("id", h.ID), zap.Error(err))
			continue
		}
		s := result.State
		fmt.Fprintf(w, "%5v  %7v  %8v  %6v  %7.2f  %7.2f\n", h.ID, s.Score, s.Corrects, s.Fails, result.Stats.Mean, result.Stats.Stdev)
	}
	return nil
}

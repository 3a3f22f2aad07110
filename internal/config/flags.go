package config

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Flags are the command line overrides of a Config. Zero values mean the
// flag was not given.
type Flags struct {
	ConfigFile  *string
	PreRoll     *time.Duration
	FramePeriod *time.Duration
	LogLevel    *string
	LogFormat   *string
	LogFile     *string
	History     *string
	NoHistory   *bool
}

func Register(app *kingpin.Application) *Flags {
	return &Flags{
		ConfigFile:  app.Flag("config", "TOML configuration file").Short('c').ExistingFile(),
		PreRoll:     app.Flag("pre-roll", "Delay before the song starts").Short('d').Duration(),
		FramePeriod: app.Flag("frame-period", "Tick period").Short('p').Duration(),
		LogLevel:    app.Flag("log-level", "debug, info, warn or error").Short('l').String(),
		LogFormat:   app.Flag("log-format", "console or json").Enum("console", "json"),
		LogFile:     app.Flag("log-file", "Log to this file instead of stderr").String(),
		History:     app.Flag("history", "Input history database").String(),
		NoHistory:   app.Flag("no-history", "Do not record inputs").Bool(),
	}
}

// Config loads the config file, if any, and applies the flags over it.
func (f *Flags) Config() (*Config, error) {
	cfg := Defaults()
	if "" != *f.ConfigFile {
		var err error
		if cfg, err = Load(*f.ConfigFile); nil != err {
			return nil, err
		}
	}
	f.apply(cfg)
	if err := cfg.Validate(); nil != err {
		return nil, err
	}
	return cfg, nil
}

func (f *Flags) apply(cfg *Config) {
	if 0 != *f.PreRoll {
		cfg.Session.PreRoll = *f.PreRoll
	}
	if 0 != *f.FramePeriod {
		cfg.Session.FramePeriod = *f.FramePeriod
	}
	if "" != *f.LogLevel {
		cfg.Logging.Level = *f.LogLevel
	}
	if "" != *f.LogFormat {
		cfg.Logging.Format = *f.LogFormat
	}
	if "" != *f.LogFile {
		cfg.Logging.File = *f.LogFile
	}
	if "" != *f.History {
		cfg.History.Path = *f.History
	}
	if *f.NoHistory {
		cfg.History.Enabled = false
	}
}

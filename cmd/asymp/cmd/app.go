package cmd

import (
	"os"

	"github.com/msto63/asymptotix/foundation/core/config"
	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/foundation/utils/asympx"
	"github.com/msto63/asymptotix/internal/store"
)

const envPrefix = "ASYMP"

// appContext carries the validated configuration shared by all commands
type appContext struct {
	cfg          *config.Config
	logger       *mdwlog.Logger
	tolerance    asympx.Tolerance
	logTolerance float64
	epsilon      float64
	storePath    string
	tuiHistory   int
}

func configDefaults() map[string]interface{} {
	tol := asympx.DefaultTolerance()
	return map[string]interface{}{
		"tolerance.abs": tol.Abs,
		"tolerance.rel": tol.Rel,
		"tolerance.log": asympx.LogTolerance,
		"log.level":     "warn",
		"log.format":    "text",
		"store.path":    store.DefaultConfig().Path,
		"eval.epsilon":  0.0,
		"tui.history":   100,
	}
}

func configRules() config.ValidationRules {
	return config.ValidationRules{
		"tolerance.abs": {Type: "float", Min: config.Bound(0)},
		"tolerance.rel": {Type: "float", Min: config.Bound(0), Max: config.Bound(1)},
		"tolerance.log": {Type: "float", Above: config.Bound(0), Max: config.Bound(1)},
		"log.level":     {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
		"log.format":    {Type: "string", OneOf: []string{"text", "json", "console", "logfmt"}},
		"store.path":    {Type: "string", Required: true},
		"eval.epsilon":  {Type: "float", Min: config.Bound(0)},
		"tui.history":   {Type: "int", Min: config.Bound(1)},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults(),
		})
	}
	return config.Discover(config.DiscoveryOptions{
		Paths:     config.DefaultPaths("asymp"),
		Filenames: []string{"asymp", "config"},
		EnvPrefix: envPrefix,
		Defaults:  configDefaults(),
	})
}

func newAppContext() (*appContext, error) {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(configRules()).Err(); err != nil {
		return nil, err
	}
	tol := asympx.Tolerance{
		Abs: cfg.GetFloat("tolerance.abs"),
		Rel: cfg.GetFloat("tolerance.rel"),
	}
	if tol == (asympx.Tolerance{}) {
		return nil, errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("config").
			Messagef("tolerance.abs and tolerance.rel must not both be 0").
			Kind(mdwerror.CodeInvalidConfig).
			Build()
	}

	level, err := mdwlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	if verbose {
		level = mdwlog.LevelDebug
	}

	formatName := cfg.GetString("log.format")
	if logFormat != "" {
		formatName = logFormat
	}
	format, err := mdwlog.ParseFormat(formatName)
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleCLI, "log-format", formatName, "text, json, console or logfmt")
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:     level,
		Format:    format,
		Output:    os.Stderr,
		Component: "asymp",
	})
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"file":   cfg.FilePath(),
		"format": cfg.Format().String(),
	})

	return &appContext{
		cfg:    cfg,
		logger: logger,
		tolerance:    tol,
		logTolerance: cfg.GetFloat("tolerance.log"),
		epsilon:      cfg.GetFloat("eval.epsilon"),
		storePath:    cfg.GetString("store.path"),
		tuiHistory:   cfg.GetInt("tui.history"),
	}, nil
}

func (a *appContext) openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(store.Config{Path: a.storePath, Logger: a.logger})
}

package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/neocompliance/neocompliance/internal/analyzer"
	"github.com/neocompliance/neocompliance/internal/config"
	"github.com/neocompliance/neocompliance/internal/logger"
	"github.com/neocompliance/neocompliance/internal/policy"
	"github.com/neocompliance/neocompliance/internal/report"
)

// app is what every analysis command needs: configuration, the effective
// rule catalog and an engine built from it.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	catalog *policy.Catalog
	packs   []policy.PackInfo
	engine  *analyzer.Engine
}

// loadConfig reads the layered configuration and applies the persistent
// flag overrides on top of it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if catalogPath != "" {
		if _, err := os.Stat(catalogPath); err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		cfg.CatalogPath = catalogPath
	}
	if packsPath != "" {
		cfg.PacksDir = packsPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if outputFlag != "" {
		cfg.Output = outputFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the base catalog with every enabled pack merged in.
func loadCatalog(cfg *config.Config, log *zap.Logger) (*policy.Catalog, []policy.PackInfo, error) {
	if cfg.CatalogPath != "" {
		if _, err := os.Stat(cfg.CatalogPath); os.IsNotExist(err) {
			log.Warn("catalog file not found, using the built-in catalog", zap.String("path", cfg.CatalogPath))
		}
	}
	base, err := policy.Load(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	catalog, packs, err := policy.LoadPacks(cfg.PacksDir, base)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load packs: %w", err)
	}
	for _, p := range packs {
		if p.Err != nil {
			log.Warn("skipping unreadable pack", zap.String("path", p.Path), zap.Error(p.Err))
		}
	}
	return catalog, packs, nil
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewDiagnostic(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	catalog, packs, err := loadCatalog(cfg, log)
	if err != nil {
		return nil, err
	}

	engine, err := analyzer.NewEngine(catalog,
		analyzer.WithLogger(log),
		analyzer.WithThresholds(cfg.Detection),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &app{cfg: cfg, log: log, catalog: catalog, packs: packs, engine: engine}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

func (a *app) format() (report.Format, error) {
	return report.ParseFormat(a.cfg.Output)
}

// colorEnabled reports whether w is a terminal that should get styled output.
func colorEnabled(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
}

func printRule(w io.Writer, title string) {
	line := "─── " + title + " "
	for n := len([]rune(line)); n < 55; n++ {
		line += "─"
	}
	fmt.Fprintln(w, line)
}

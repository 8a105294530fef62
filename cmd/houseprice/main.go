package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"houseprice/internal/config"
	"houseprice/internal/dataset"
	"houseprice/internal/features"
	"houseprice/internal/importance"
	"houseprice/internal/logging"
	"houseprice/internal/model"
	"houseprice/internal/service"
	"houseprice/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, inputsPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/houseprice/config.yaml if not provided)")
	flag.StringVar(&inputsPath, "inputs", "", "YAML file of house attributes; prints one prediction and exits")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The TUI owns the terminal, so interactive runs log to a file.
	logFile := cfg.Logging.File
	if inputsPath != "" {
		logFile = ""
	}
	logger, closer, err := logging.Configure(cfg.Logging.Level, logFile)
	if err != nil {
		log.Fatalf("failed to configure logging: %v", err)
	}
	defer closer.Close()

	svc := buildService(cfg, logger)

	if inputsPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := predictOnce(ctx, svc, inputsPath, os.Stdout)
		cancel()
		if err != nil {
			logger.Error("prediction failed", "inputs", inputsPath, "error", err)
			closer.Close()
			os.Exit(1)
		}
		return
	}

	if _, err := tea.NewProgram(tui.New(svc), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tui exited", "error", err)
		fmt.Fprintln(os.Stderr, "tui:", err)
		closer.Close()
		os.Exit(1)
	}
}

// buildService loads the model and dataset once. Load failures are logged and kept so the
// UI can report them; the application still starts.
func buildService(cfg *config.AppConfig, logger *slog.Logger) *service.PriceService {
	asm := features.NewAssembler(nil)

	reg, modelErr := model.Load(cfg.Model, asm.Dimension())
	if modelErr != nil {
		logger.Error("model unavailable", "type", cfg.Model.Type, "error", modelErr)
	} else {
		logger.Info("model loaded", "type", cfg.Model.Type, "name", reg.Name())
	}

	ds, dataErr := dataset.Load(cfg.Dataset.Path)
	if dataErr != nil {
		logger.Warn("dataset unavailable", "path", cfg.Dataset.Path, "error", dataErr)
	} else {
		logger.Info("dataset loaded", "path", cfg.Dataset.Path, "rows", ds.Len())
	}

	seed := cfg.Importance.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	imp, err := importance.Select(importance.Mode(cfg.Importance.Mode), features.Names(), reg, seed)
	if err != nil {
		logger.Warn("feature importance unavailable", "mode", cfg.Importance.Mode, "error", err)
	}

	return service.NewPriceService(service.Deps{
		Assembler:  asm,
		Model:      reg,
		ModelErr:   modelErr,
		Dataset:    ds,
		DatasetErr: dataErr,
		Importance: imp,
		Logger:     logger,
	}, service.Options{
		TargetColumn:  cfg.Dataset.TargetColumn,
		HeadRows:      cfg.Dataset.HeadRows,
		HistogramBins: cfg.Dataset.HistogramBins,
		TopN:          cfg.Importance.TopN,
	})
}

// predictOnce reads an inputs file, predicts and prints the price with the top features.
func predictOnce(ctx context.Context, svc *service.PriceService, path string, w io.Writer) error {
	in, err := features.LoadInputs(path, svc.CurrentYear())
	if err != nil {
		return err
	}
	res, err := svc.Predict(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Predicted House Price: %s\n", res.Display())

	impact, err := svc.Impact()
	if err != nil {
		return nil
	}
	title := "Top features"
	if impact.Illustrative {
		title += " (illustrative only)"
	}
	fmt.Fprintf(w, "%s:\n", title)
	for i, it := range impact.Items {
		fmt.Fprintf(w, "%2d. %-26s %.3f\n", i+1, it.Feature, it.Value)
	}
	return nil
}

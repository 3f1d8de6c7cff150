package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VarunSharma3520/floatinput/internal/config"
	"github.com/VarunSharma3520/floatinput/internal/fs"
	"github.com/VarunSharma3520/floatinput/internal/logger"
	"github.com/VarunSharma3520/floatinput/internal/types"
	"github.com/VarunSharma3520/floatinput/internal/ui"
	"github.com/VarunSharma3520/floatinput/internal/validation"
)

func main() {
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The data directory holds the log file
	if err := fs.EnsureDirExists(cfg.VaultPath); err != nil {
		log.Fatalf("Failed to ensure data directory exists: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.LogPath, logger.WithLevel(level))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	form := config.DefaultForm()
	if cfg.FormPath != "" {
		form, err = config.LoadForm(cfg.FormPath)
		if err != nil {
			log.Fatalf("Failed to load form: %v", err)
		}
	}

	theme, ok := validation.LookupTheme(cfg.Theme)
	if !ok {
		appLogger.Warn("unknown theme, using standard", map[string]interface{}{"theme": cfg.Theme})
	}

	model, err := ui.NewModel(form, theme, appLogger)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}
	defer model.Close()

	appLogger.Info("starting form", map[string]interface{}{
		"fields": model.Names,
		"theme":  theme.Name,
		"form":   cfg.FormPath,
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		appLogger.Error("program exited with error", err, nil)
		log.Fatalf("Error running program: %v", err)
	}

	if m, ok := final.(*ui.Model); ok && m.Mode == types.ModeSubmitted {
		fmt.Println(m.View())
	}
}

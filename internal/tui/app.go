package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kudoshq/kudoticker/internal/config"
	"github.com/kudoshq/kudoticker/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	logger  *logging.Logger
}

// New creates a new ticker application
func New(loader Loader, cfg *config.Config, logger *logging.Logger) *App {
	return &App{
		model:  NewModel(loader, cfg, logger.WithComponent("ticker")),
		logger: logger,
	}
}

// Run starts the ticker application and blocks until it exits
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward termination signals as a quit message so the alternate
	// screen is restored before the process exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}

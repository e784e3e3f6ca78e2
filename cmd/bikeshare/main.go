// Package main is the entry point for the Bikeshare TUI application.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citybikes/bikeshare-tui/internal/app"
	"github.com/citybikes/bikeshare-tui/internal/config"
	"github.com/citybikes/bikeshare-tui/internal/logger"
	"github.com/citybikes/bikeshare-tui/internal/services"
	"github.com/citybikes/bikeshare-tui/internal/ui/tabs/charts"
	"github.com/citybikes/bikeshare-tui/internal/ui/tabs/data"
	"github.com/citybikes/bikeshare-tui/internal/ui/tabs/explore"
	"github.com/citybikes/bikeshare-tui/internal/ui/tabs/info"
	"github.com/citybikes/bikeshare-tui/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)

	// 2. Initialize the service manager
	// This wires the CSV loader, the in-memory frame and the data watcher
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 3. Create the root Bubble Tea model
	model := app.NewModel(svcManager)

	// 4. Initialize tabs with shared state and services
	// Each tab receives the shared application state for consistent data access
	state := model.GetState()
	tabs := []app.Tab{
		explore.New(state, svcManager.Cities()), // Tab 0: Explore - filters and statistics report
		charts.New(state),                       // Tab 1: Charts - distributions
		data.New(state),                         // Tab 2: Data - raw trip preview
		info.New(state, cfg),                    // Tab 3: Info - configuration and app info
	}
	model.SetTabs(tabs)

	// 5. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 6. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer (full terminal)
		tea.WithMouseCellMotion(), // Enable mouse support for selection
	)

	// 7. Handle signals in a separate goroutine
	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	// 8. Run the TUI program
	// This blocks until the user quits or an error occurs
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Bikeshare TUI - Bicycle-share trip data explorer

Usage:
  bikeshare [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Explore, Charts, Data, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  h/l, Left/Right Change filter values
  Enter           Apply filters
  +/-             Adjust preview row count
  r               Reload data
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  BIKESHARE_DATA_DIR        Directory holding the city CSV files (default: data)
  BIKESHARE_PREVIEW_ROWS    Raw preview row count, 5-50 (default: 5)
  BIKESHARE_WATCH_DATA      Reload when CSV files change (default: true)
  BIKESHARE_DESKTOP_NOTIFY  Desktop notification on data change (default: false)
  BIKESHARE_LOG_LEVEL       debug, info, warn or error (default: info)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/bikeshare-tui/.env
  - ~/.bikeshare/.env`)
}

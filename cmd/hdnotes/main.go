package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/app"
	"github.com/thisisdkyadav/hdnotes/internal/config"
	"github.com/thisisdkyadav/hdnotes/internal/session"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath  = flag.String("config", "", "path to config file")
	apiBaseURL  = flag.String("api", "", "API base URL (overrides config)")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hdnotes version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging. The terminal belongs to the TUI, so logs go to
	// a file under the config dir when debug is on, stderr otherwise.
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logOut := os.Stderr
	if *debugFlag {
		if f, err := tea.LogToFile(config.ConfigPath()+".log", "hdnotes"); err == nil {
			logOut = f
			defer f.Close()
		}
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *apiBaseURL != "" {
		cfg.API.BaseURL = *apiBaseURL
	}

	// Session persistence and the watcher that notices external
	// logins/logouts touching the same files.
	stateDir, err := config.StateDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to prepare state dir: %v\n", err)
		os.Exit(1)
	}
	sessions := session.NewStore(session.NewFilePort(stateDir))

	events, err := session.Watch(stateDir)
	if err != nil {
		logger.Warn("session watcher unavailable", "error", err)
		events = nil
	}

	client := api.New(cfg.API.BaseURL, sessions, cfg.API.Timeout, logger)

	model := app.New(cfg, client, sessions, events, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "unknown"
}

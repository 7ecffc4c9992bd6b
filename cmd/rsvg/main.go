package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/danielCantwell/rsvg/internal/command"
	"github.com/danielCantwell/rsvg/internal/config"
	"github.com/danielCantwell/rsvg/internal/tui"
)

func main() {
	plain := flag.Bool("plain", false, "read commands line by line instead of starting the terminal UI")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	useTUI := interactive && !*plain && !cfg.Plain

	logOut, closeLog, err := logWriter(cfg, useTUI)
	if err != nil {
		slog.Error("open log file", "path", cfg.LogFile, "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	grid, err := cfg.NewGrid()
	if err != nil {
		slog.Error("create grid", "error", err)
		os.Exit(1)
	}
	slog.Info("grid ready",
		"id", grid.ID(),
		"system", grid.CoordinateSystem(),
		"viewBox", grid.ViewBox(),
		"tui", useTUI,
	)

	dispatcher := command.NewDispatcher(grid, slog.Default())

	if useTUI {
		if _, err := tea.NewProgram(tui.New(dispatcher), tea.WithAltScreen()).Run(); err != nil {
			slog.Error("terminal ui", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runPlain(os.Stdin, os.Stdout, os.Stderr, dispatcher, interactive); err != nil {
		slog.Error("read input", "error", err)
		os.Exit(1)
	}
}

// logWriter picks where slog output goes. The terminal UI owns the screen,
// so it only logs to a file, and only when one is configured.
func logWriter(cfg *config.Config, useTUI bool) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	if useTUI {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

// runPlain executes one command per input line until EOF or quit. Results go
// to out and failures to errOut; a failed command never stops the loop.
func runPlain(in io.Reader, out, errOut io.Writer, d *command.Dispatcher, prompt bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if prompt {
			fmt.Fprint(out, "Enter Command: ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		result, err := d.Execute(line)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
}

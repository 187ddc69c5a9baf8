package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagpill"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("tagpill-demo", flag.ContinueOnError)
	configPath := flags.String("config", "", "TOML file to load tags from and save them to on quit")
	logPath := flags.String("log", "", "append debug logs to this file")
	showVersion := flags.Bool("version", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintln(stdout, tagpill.VersionTag())
		return err
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadDemoConfig(*configPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newApp(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if *configPath == "" {
		return nil
	}
	a, ok := final.(app)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	if err := saveDemoConfig(*configPath, a.export(cfg)); err != nil {
		return err
	}
	logger.Info("tags saved", "path", *configPath)
	return nil
}

// openLogger returns a debug text logger appending to path, or a discarding
// logger when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

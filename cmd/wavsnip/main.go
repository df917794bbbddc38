// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/wavsnip"
	"github.com/ik5/wavsnip/audio"
	"github.com/ik5/wavsnip/internal/config"
	"github.com/ik5/wavsnip/internal/logging"
	"github.com/ik5/wavsnip/internal/ui"
	"github.com/ik5/wavsnip/playback"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cfg, err := config.Load(argv, os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: opening log file:", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}

	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting wavsnip",
		"path", cfg.Path,
		"loop", cfg.Loop,
		"notify_interval", cfg.NotifyInterval,
	)

	// The program is created after the editor; device events only start
	// flowing once it runs.
	var program *tea.Program
	post := func(ev playback.Event) { program.Send(ui.EventMsg(ev)) }

	var spk *playback.Speaker
	newSpeaker := func(info audio.Info) (playback.Device, error) {
		s, err := playback.NewSpeaker(info, logger)
		if err != nil {
			return nil, err
		}
		spk = s
		return s, nil
	}

	ed, err := wavsnip.Open(cfg.Path, newSpeaker, wavsnip.Options{
		Loop:   cfg.Loop,
		Post:   post,
		Logger: logger,
	})
	if err != nil {
		logger.Error("failed to open wav", "path", cfg.Path, "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer spk.Close()

	program = tea.NewProgram(ui.New(ed, cfg.NotifyInterval, logger))
	if _, err := program.Run(); err != nil {
		logger.Error("ui exited with error", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	logger.Info("shutdown complete")

	return 0
}

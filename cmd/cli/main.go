package main

import (
	"flag"
	"fmt"
	"os"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/cmd/cli/tui"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/bootstrap"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/walstream"
)

func main() {
	configPath := flag.String("config", "./samples/config.yaml", "path to the YAML config")
	flag.Parse()

	cfg, err := (&config.ConfigImpl{}).Load(*configPath)
	if err != nil {
		fmt.Println("Config error:", err)
		os.Exit(1)
	}

	logChan := make(chan string, 100)
	journalFeed := walstream.NewChanStreamer(100)
	sys, _, err := bootstrap.Open(cfg, bootstrap.Options{
		LogWriter: &tui.ChannelWriter{Ch: logChan},
		Streamer:  journalFeed,
	})
	if err != nil {
		fmt.Println("System startup error:", err)
		os.Exit(1)
	}
	defer sys.Stop()

	p := bubbletea.NewProgram(tui.NewModel(sys, cfg.Wheel.AnimationDuration, logChan, journalFeed.C), bubbletea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}

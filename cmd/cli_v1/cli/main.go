package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/bootstrap"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/walstream"
)

// Headless wheel: spins in a loop, waiting the animation duration between
// spin and completion.
func main() {
	configPath := flag.String("config", "./samples/config.yaml", "path to the YAML config")
	streamJournal := flag.Bool("stream-journal", false, "log every flushed journal entry")
	flag.Parse()

	cfg, err := (&config.ConfigImpl{}).Load(*configPath)
	if err != nil {
		fmt.Println("Config error:", err)
		os.Exit(1)
	}

	var streamer walstream.Streamer = walstream.NewNoOpStreamer()
	if *streamJournal {
		fmt.Println("Journal streaming is enabled.")
		streamer = walstream.NewLogStreamer(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	}
	sys, _, err := bootstrap.Open(cfg, bootstrap.Options{
		Streamer: streamer,
		OnResolved: func(res types.Resolution) {
			fmt.Printf("[Spin %s] Won %s, %d left\n", res.SpinID[:8], res.Item.Name, res.Remaining)
		},
	})
	if err != nil {
		fmt.Println("System startup error:", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("CLI Controls:")
	fmt.Println("  - Press '1' to add 5 to every item.")
	fmt.Println("  - Press '2' to write a snapshot.")
	fmt.Println("  - Press Ctrl+C or send SIGTERM to exit.")
	fmt.Println("-------------------------------------------------")
	printState(sys)

	spinLock := make(chan struct{}, 1) // Held while a spin is in flight
	spinLock <- struct{}{}

	go func() {
		for {
			<-spinLock
			rec, err := sys.Spin()
			if err != nil {
				fmt.Printf("Spin failed: %v\n", err)
				spinLock <- struct{}{}
				time.Sleep(cfg.Wheel.AnimationDuration)
				continue
			}
			fmt.Printf("[Spin %s] %d laps to %.2f...\n", rec.ID[:8], rec.Laps, rec.TargetRotation)
			time.Sleep(cfg.Wheel.AnimationDuration)

			if _, err := sys.AnimationComplete(); err != nil {
				fmt.Printf("[Spin %s] failed: %v\n", rec.ID[:8], err)
			} else {
				sys.Acknowledge()
			}
			spinLock <- struct{}{}
			time.Sleep(1 * time.Second)
		}
	}()

	// Goroutine to handle user input
	go func() {
		reader := bufio.NewReader(os.Stdin)
		for {
			char, _, err := reader.ReadRune()
			if err != nil {
				fmt.Println("Error reading input:", err)
				return
			}

			switch char {
			case '1':
				fmt.Println("\n--- Restocking... ---")
				state, err := sys.State()
				if err != nil {
					fmt.Println(err)
					continue
				}
				items := make([]types.Item, 0, len(state.Items))
				for _, item := range state.Items {
					items = append(items, types.Item{Name: item.Name, Quantity: item.Quantity + 5})
				}
				if err := sys.UpdateItems(items); err != nil {
					fmt.Printf("Failed to restock: %v\n", err)
				} else {
					printState(sys)
				}
			case '2':
				if err := sys.Snapshot(); err != nil {
					fmt.Printf("Snapshot failed: %v\n", err)
				} else {
					fmt.Println("--- Snapshot written ---")
				}
			}
		}
	}()

	<-sigChan
	fmt.Println("Shutting down gracefully...")
	<-spinLock

	printState(sys)
	sys.Stop()
	fmt.Println("Shutdown complete.")
}

func printState(sys *actor.System) {
	state, err := sys.State()
	if err != nil {
		fmt.Println("[Wheel state] unavailable:", err)
		return
	}
	fmt.Printf("[Wheel state] rotation=%.2f spins=%d\n", state.CurrentRotation, state.Spins)
	for _, item := range state.Items {
		fmt.Printf("  %-16s %d\n", item.Name, item.Quantity)
	}
}

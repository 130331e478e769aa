package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/doodle/internal/application/game"
	"github.com/younwookim/doodle/internal/application/scene/playing"
	"github.com/younwookim/doodle/internal/application/session"
	"github.com/younwookim/doodle/internal/application/system"
	"github.com/younwookim/doodle/internal/infrastructure/audio"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// loadConfig reads path when set, otherwise the named built-in preset
func loadConfig(path, preset string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").Load(preset)
}

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Load config from a JSON or TOML file instead of a preset")
	presetFlag := flag.String("preset", "game", "Built-in config preset (game, wide)")
	seedFlag := flag.Uint64("seed", 0, "Fix the platform layout seed")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-run a recorded game headlessly and check it ends the same way")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if *replayFlag != "" {
		if err := verifyReplay(*replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	cfg, err := loadConfig(*configFlag, *presetFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed := *seedFlag
			cfg.Seed = &seed
		}
	})

	var opts []session.Option
	if *recordFlag != "" {
		opts = append(opts, session.WithRecorder())
	}
	sess, err := session.New(cfg, session.NewSeed(cfg), opts...)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	blipper := audio.NewBlipper()
	if !*muteFlag {
		if err := blipper.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer blipper.Close()

	screenW, screenH := int(cfg.World.Width), int(cfg.World.Height)
	scene := playing.New(sess, system.NewInputSystem(cfg.Input), blipper, *recordFlag)
	g := game.New(scene, screenW, screenH, cfg.Display.TPS)

	// Set up ebiten
	ebiten.SetWindowSize(screenW*cfg.Display.Scale, screenH*cfg.Display.Scale)
	ebiten.SetWindowTitle("Doodle Jump")
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game
	err = ebiten.RunGame(g)
	// Closing the window skips the scene's OnExit
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

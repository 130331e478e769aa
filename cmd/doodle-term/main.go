package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/doodle/internal/application/session"
	"github.com/younwookim/doodle/internal/application/world"
	"github.com/younwookim/doodle/internal/domain/entity"
	"github.com/younwookim/doodle/internal/infrastructure/audio"
	"github.com/younwookim/doodle/internal/infrastructure/config"
)

// action is what a key press asks the app to do
type action int

const (
	actNone action = iota
	actMove
	actRestart
	actQuit
)

var errQuit = errors.New("quit")

// app runs one session in the terminal
type app struct {
	screen   tcell.Screen
	sess     *session.Session
	sound    *audio.Blipper
	events   chan tcell.Event
	interval time.Duration
}

// translate maps a terminal event to an action and, for moves, the direction
func translate(ev tcell.Event) (action, entity.Direction) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return actNone, 0
	}
	return keyAction(key.Key(), key.Rune())
}

func keyAction(k tcell.Key, r rune) (action, entity.Direction) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, 0
	case tcell.KeyLeft:
		return actMove, entity.DirLeft
	case tcell.KeyRight:
		return actMove, entity.DirRight
	case tcell.KeyRune:
		switch r {
		case 'a', 'h':
			return actMove, entity.DirLeft
		case 'd', 'l':
			return actMove, entity.DirRight
		case 'r':
			return actRestart, 0
		case 'q':
			return actQuit, 0
		}
	}
	return actNone, 0
}

func (a *app) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			close(a.events)
			return
		}
		a.events <- ev
	}
}

func (a *app) status() string {
	return fmt.Sprintf(" seed %d | tick %d | ←/→ a/d h/l move  q quit",
		a.sess.Seed(), a.sess.Ticks())
}

func (a *app) onTick(snap world.Snapshot, res world.TickResult) {
	if res.Bounced {
		a.sound.Bounce()
	}
	if res.Died {
		a.sound.GameOver()
	}
	draw(a.screen, snap, a.status())
}

// play ticks the session until game over, feeding key presses into it
func (a *app) play(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.sess.Run(ctx, a.interval, a.onTick)
	}()

	for {
		select {
		case err := <-done:
			return err
		case ev, ok := <-a.events:
			if !ok {
				cancel()
				<-done
				return errQuit
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				a.screen.Sync()
				continue
			}
			switch act, dir := translate(ev); act {
			case actMove:
				a.sess.Push(dir)
			case actQuit:
				cancel()
				<-done
				return errQuit
			}
		}
	}
}

// waitForRestart blocks on the game-over screen until the player restarts or quits
func (a *app) waitForRestart(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-a.events:
			if !ok {
				return false
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				a.screen.Sync()
				draw(a.screen, a.sess.Snapshot(), a.status())
				continue
			}
			switch act, _ := translate(ev); act {
			case actRestart:
				return true
			case actQuit:
				return false
			}
		}
	}
}

func (a *app) run(ctx context.Context) error {
	go a.pollEvents()

	for {
		err := a.play(ctx)
		if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}

		if !a.waitForRestart(ctx) {
			return nil
		}
		if err := a.sess.Restart(uint64(time.Now().UnixNano())); err != nil {
			return err
		}
	}
}

func main() {
	configFlag := flag.String("config", "", "Load config from a JSON or TOML file (defaults are built in)")
	seedFlag := flag.Uint64("seed", 0, "Fix the platform layout seed")
	logFlag := flag.String("log", "", "Write session logs to file")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.LoadFile(*configFlag)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed := *seedFlag
			cfg.Seed = &seed
		}
	})

	// The screen belongs to the game; logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	sess, err := session.New(cfg, session.NewSeed(cfg), session.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	blipper := audio.NewBlipper()
	if !*muteFlag {
		if err := blipper.Init(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", slog.Any("error", err))
		}
	}
	defer blipper.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		screen:   screen,
		sess:     sess,
		sound:    blipper,
		events:   make(chan tcell.Event, 100),
		interval: time.Second / time.Duration(cfg.Display.TPS),
	}
	err = a.run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}

// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/doodle/internal/application/game"
	"github.com/younwookim/doodle/internal/application/replay"
	"github.com/younwookim/doodle/internal/application/scene"
	"github.com/younwookim/doodle/internal/application/session"
	"github.com/younwookim/doodle/internal/application/state"
	"github.com/younwookim/doodle/internal/application/system"
	"github.com/younwookim/doodle/internal/application/world"
	"github.com/younwookim/doodle/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{250, 248, 239, 255}
	colorGrid     = color.RGBA{230, 228, 219, 255}
	colorPlatform = color.RGBA{90, 170, 60, 255}
	colorDoodler  = color.RGBA{200, 190, 40, 255}
	colorFeet     = color.RGBA{120, 110, 20, 255}
	colorPause    = color.RGBA{0, 0, 0, 128}
	colorGameOver = color.RGBA{100, 0, 0, 180}
)

const gridSpacing = 20

// Sounder plays feedback for game events
type Sounder interface {
	Bounce()
	GameOver()
}

type silent struct{}

func (silent) Bounce()   {}
func (silent) GameOver() {}

// controls is one tick's worth of player intent
type controls struct {
	pause   bool
	restart bool
	quit    bool
	moves   []entity.Direction
}

// Playing is the main gameplay scene
type Playing struct {
	session *session.Session
	input   *system.InputSystem
	sound   Sounder
	state   state.GameState // adds Paused on top of the session's state
	screenW int
	screenH int
	climbed float64 // total scroll distance this game

	newSeed func() uint64

	// Input recording
	recordFilename string
	game           int // 1-based, picks the replay file of the current game
	saved          bool
}

// New creates a new Playing scene around a running session.
// If recordPath is not empty, finished games are saved there.
func New(sess *session.Session, input *system.InputSystem, sound Sounder, recordPath string) *Playing {
	if sound == nil {
		sound = silent{}
	}
	snap := sess.Snapshot()

	p := &Playing{
		session:        sess,
		input:          input,
		sound:          sound,
		state:          sess.State(),
		screenW:        int(snap.Width),
		screenH:        int(snap.Height),
		newSeed:        func() uint64 { return uint64(time.Now().UnixNano()) },
		recordFilename: recordPath,
		game:           1,
	}

	if sess.Recorder() != nil {
		log.Printf("Recording enabled: %s (seed: %d)", p.filename(), sess.Seed())
	}
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	return nil, p.step(p.readControls())
}

func (p *Playing) readControls() controls {
	return controls{
		pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
		moves:   p.input.Poll(),
	}
}

func (p *Playing) step(c controls) error {
	if c.quit {
		return game.ErrQuit
	}

	switch p.state {
	case state.StateRunning:
		if c.pause {
			p.state = state.StatePaused
			return nil
		}
		p.tick(c.moves)
	case state.StatePaused:
		if c.pause {
			p.state = state.StateRunning
		}
	case state.StateGameOver:
		if c.restart {
			return p.restart()
		}
	}

	return nil
}

func (p *Playing) tick(moves []entity.Direction) {
	for _, dir := range moves {
		p.session.Push(dir)
	}

	res := p.session.Tick()
	p.climbed += res.Scrolled
	if res.Bounced {
		p.sound.Bounce()
	}

	if p.session.State() == state.StateGameOver {
		p.state = state.StateGameOver
		p.sound.GameOver()
		// Auto-save recording on game over
		p.saveRecording()
	}
}

func (p *Playing) restart() error {
	seed := p.newSeed()
	if err := p.session.Restart(seed); err != nil {
		return err
	}

	p.state = state.StateRunning
	p.climbed = 0
	p.game++
	p.saved = false
	if p.session.Recorder() != nil {
		log.Printf("Recording restarted: %s (seed: %d)", p.filename(), seed)
	}
	return nil
}

// filename returns the replay file of the current game.
// Games after the first get a numbered suffix so earlier replays survive.
func (p *Playing) filename() string {
	name := p.recordFilename
	if name == "" {
		name = replay.GenerateFilename()
	}
	if p.game <= 1 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), p.game, ext)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	rec := p.session.Recorder()
	if rec == nil || p.saved {
		return
	}

	filename := p.filename()
	if err := rec.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	p.saved = true
	log.Printf("Recording saved: %s (%d ticks with input)", filename, rec.InputCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.session.Snapshot()

	screen.Fill(colorBG)
	p.drawGrid(screen)

	for _, pl := range snap.Platforms {
		drawEntity(screen, pl, colorPlatform)
	}
	p.drawDoodler(screen, snap.Doodler)

	p.drawUI(screen, snap)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// drawGrid draws graph-paper lines that scroll with the world
func (p *Playing) drawGrid(screen *ebiten.Image) {
	offset := int(p.climbed) % gridSpacing
	for y := offset; y < p.screenH; y += gridSpacing {
		ebitenutil.DrawRect(screen, 0, float64(y), float64(p.screenW), 1, colorGrid)
	}
}

func drawEntity(screen *ebiten.Image, v world.EntityView, c color.Color) {
	ebitenutil.DrawRect(screen, v.Position.X, v.Position.Y, v.Size.Width, v.Size.Height, c)
}

func (p *Playing) drawDoodler(screen *ebiten.Image, d world.EntityView) {
	drawEntity(screen, d, colorDoodler)

	// Feet strip marks the collision edge
	feet := d.Size.Height / 6
	ebitenutil.DrawRect(screen, d.Position.X, d.Position.Y+d.Size.Height-feet, d.Size.Width, feet, colorFeet)
}

func (p *Playing) drawUI(screen *ebiten.Image, snap world.Snapshot) {
	ebitenutil.DebugPrintAt(screen, p.hudText(), 10, p.screenH-20)

	// Controls
	debugText := "Left/Right or A/D: Move | ESC: Pause | Q: Quit"
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		debugText = fmt.Sprintf("tick %d  v=%.2f  y=%.1f  dropped=%d",
			p.session.Ticks(), snap.Velocity, snap.Doodler.Position.Y, p.session.Dropped())
	}
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) hudText() string {
	return fmt.Sprintf("Seed: %d", p.session.Seed())
}

func overlayText(s state.GameState) string {
	switch s {
	case state.StatePaused:
		return "PAUSED\n\nPress ESC to resume"
	case state.StateGameOver:
		return "GAME OVER\n\nPress Z to restart"
	}
	return ""
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPause)
	ebitenutil.DebugPrintAt(screen, overlayText(state.StatePaused), p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorGameOver)
	ebitenutil.DebugPrintAt(screen, overlayText(state.StateGameOver), p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}


package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/deepminer/internal/audio"
	"github.com/spacehole-rogue/deepminer/internal/config"
	"github.com/spacehole-rogue/deepminer/internal/game"
	"github.com/spacehole-rogue/deepminer/internal/input"
	"github.com/spacehole-rogue/deepminer/internal/logging"
	"github.com/spacehole-rogue/deepminer/internal/render"
	"github.com/spacehole-rogue/deepminer/internal/station"
)

const title = "Deep Miner"

// Game is the Ebitengine game struct. It owns input, rendering and the
// station screen. All mission state lives in flow.
type Game struct {
	flow     *game.Flow
	renderer *render.Renderer
	sampler  *input.Sampler
	shop     *station.Shop
	sound    *audio.Engine
	rng      *rand.Rand
	log      *slog.Logger

	width, height int
	greeting      string
	notice        string
}

// NewGame wires the flow, renderer and shop around one tuning document.
func NewGame(tun *config.Tuning, seed int64, sound *audio.Engine, log *slog.Logger, width, height int) *Game {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))
	fx := rand.New(rand.NewPCG(uint64(seed)^0x9e3779b97f4a7c15, 7))

	return &Game{
		flow: game.NewFlow(game.Options{
			Tuning: tun,
			Rand:   rng,
			Sounds: sound,
			Logger: log,
		}),
		renderer: render.New(fx),
		sampler:  input.NewSampler(),
		shop:     station.NewShop(tun.Station, tun.Ship),
		sound:    sound,
		rng:      rng,
		log:      log,
		width:    width,
		height:   height,
	}
}

func (g *Game) Update() error {
	if input.Pressed(ebiten.KeyEscape) {
		g.flow.Shutdown()
		return ebiten.Termination
	}
	if input.Pressed(ebiten.KeyM) {
		muted := g.sound.ToggleMute()
		g.log.Debug("mute toggled", "muted", muted)
	}

	switch g.flow.Screen {
	case game.ScreenStart:
		if input.Pressed(ebiten.KeySpace) {
			g.flow.Start()
		}
	case game.ScreenPlaying:
		g.flow.Tick(g.sampler.Sample(g.width, g.height))
		if g.flow.Screen == game.ScreenDocked {
			g.greeting = station.Greeting(g.rng)
			g.notice = ""
		}
	case game.ScreenDocked:
		g.updateDocked()
	case game.ScreenGameOver:
		if input.Pressed(ebiten.KeySpace) {
			g.flow.Restart()
		}
	}
	return nil
}

// updateDocked handles the shop keys.
func (g *Game) updateDocked() {
	ship := &g.flow.Ship
	switch {
	case input.Pressed(ebiten.KeyS):
		earned := g.shop.SellAll(ship)
		g.notice = fmt.Sprintf("Sold cargo for %d credits.", earned)
		g.log.Info("cargo sold", "credits", earned)
	case input.Pressed(ebiten.KeyF):
		bought := g.shop.Refuel(ship)
		g.notice = fmt.Sprintf("Bought %.0f fuel.", bought)
		g.log.Info("refuelled", "units", bought, "credits_left", ship.Credits)
	case input.Pressed(ebiten.KeySpace):
		g.flow.Launch()
	default:
		keys := [station.UpgradeKindCount]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
		for k, key := range keys {
			if !input.Pressed(key) {
				continue
			}
			kind := station.UpgradeKind(k)
			if g.shop.Buy(ship, kind) {
				g.notice = fmt.Sprintf("%s upgraded.", kind)
				g.log.Info("upgrade bought", "upgrade", kind.String(), "level", g.shop.Level(ship, kind))
			} else {
				g.notice = "Not enough credits."
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.flow.Screen {
	case game.ScreenStart:
		g.renderer.DrawStart(screen)
	case game.ScreenPlaying:
		if g.flow.Session != nil {
			g.renderer.DrawMission(screen, g.flow.Session)
		}
	case game.ScreenDocked:
		g.renderer.DrawDocked(screen, render.Dock{
			Ship:     &g.flow.Ship,
			Shop:     g.shop,
			Greeting: g.greeting,
			Record:   g.flow.Record,
			Notice:   g.notice,
		})
	case game.ScreenGameOver:
		g.renderer.DrawGameOver(screen, &g.flow.Ship, g.flow.Record)
	}
}

// Layout follows the window so the view grows with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "tuning YAML file overlaid on the defaults")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = "+config.SeedEnv+" or time)")
	mute := flag.Bool("mute", false, "start with audio muted")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	log := logging.New(os.Stderr)
	if err := run(log, *configPath, *seedFlag, *mute, *width, *height); err != nil {
		log.Error("deepminer exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configPath string, seed int64, mute bool, width, height int) error {
	tun, err := config.Load(configPath)
	if err != nil {
		return logging.WrapError(err, "load tuning %q", configPath)
	}

	if seed == 0 {
		if s, ok := config.Seed(); ok {
			seed = s
		} else {
			seed = time.Now().UnixNano()
		}
	}
	log.Info("starting", "seed", seed, "config", configPath)

	sound := audio.New(log, mute)
	defer sound.Close()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(tun, seed, sound, log, width, height)
	if err := ebiten.RunGame(g); err != nil {
		return logging.WrapError(err, "run game")
	}
	return nil
}

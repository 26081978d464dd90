package main

import (
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitylegacy/input"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/milk9111/gravitylegacy/prefabs"
	"github.com/milk9111/gravitylegacy/render"
	"github.com/milk9111/gravitylegacy/session"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

type Game struct {
	session  *session.Session
	renderer *render.Renderer
	watcher  *prefabs.Watcher

	background color.Color
	debug      bool
}

func NewGame(levelName string, debug, watch bool) *Game {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load game spec")
	}

	sess, err := session.New(spec, input.NewEbiten(input.DefaultBindings()), levelName)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start game")
	}

	g := &Game{
		session:  sess,
		renderer: render.NewRenderer(),
		debug:    debug,
	}
	g.applySpec(spec)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			logger.Log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) applySpec(spec *prefabs.GameSpec) {
	g.background = colornames.Black
	if spec.Background != nil && spec.Background.Color != nil {
		g.background = spec.Background.Color
	}
}

func (g *Game) Update() error {
	if err := g.session.Update(); err != nil {
		logger.Log.WithError(err).Error("level change failed")
		return err
	}
	g.pollWatcher()
	return nil
}

// pollWatcher reloads game.yaml and the current level after files on disk change.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		logger.Log.WithError(err).Warn("file watcher error")
	}
	if len(changed) == 0 {
		return
	}

	logger.Log.WithField("files", changed).Info("reloading after file change")
	for _, path := range changed {
		if filepath.Base(path) == "game.yaml" {
			spec, err := prefabs.LoadGameSpec()
			if err != nil {
				logger.Log.WithError(err).Warn("keeping previous game spec")
				break
			}
			g.session.SetSpec(spec)
			g.applySpec(spec)
			break
		}
	}

	render.ResetImages()
	if err := g.session.Reload(); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"level": g.session.LevelName(),
		}).WithError(err).Error("reload failed")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	w := g.session.World()
	g.renderer.Draw(w, screen)

	if g.debug {
		render.DrawPhysicsDebug(g.session.Physics().Space(), w, screen)
		render.DrawDebugInfo(w, screen, g.session.Orientation().Step())
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	spec := g.session.Spec()
	return float64(spec.ScreenWidth), float64(spec.ScreenHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logger.Log.WithError(err).Warn("closing file watcher")
		}
	}
}

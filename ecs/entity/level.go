package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/levels"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/milk9111/gravitylegacy/prefabs"
	"github.com/milk9111/gravitylegacy/walls"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

const wallSheet = "wall"

var wallColor color.Color = colornames.Slategray

// LoadLevelToWorld spawns a level: one entity for the level itself, one static
// collider per merged wall rectangle and one entity per placed object. Everything
// spawned is tagged with LevelMember so UnloadLevel can remove it.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, game *prefabs.GameSpec) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("load level: world and level are required")
	}

	levelEntity := ecs.CreateEntity(w)
	member := component.LevelMember{Level: uint64(levelEntity)}

	fail := func(err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, levelEntity)
		UnloadLevel(w)
		return 0, fmt.Errorf("load level %q: %w", lvl.Name, err)
	}

	if err := ecs.Add(w, levelEntity, component.LevelComponent.Kind(), &component.Level{
		Name:     lvl.Name,
		Next:     lvl.Next,
		CellSize: lvl.CellSize,
	}); err != nil {
		return fail(err)
	}
	if err := ecs.Add(w, levelEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  lvl.PixelWidth(),
		Height: lvl.PixelHeight(),
	}); err != nil {
		return fail(err)
	}
	if err := ecs.Add(w, levelEntity, component.SolidTagComponent.Kind(), &component.SolidTag{}); err != nil {
		return fail(err)
	}
	levelMember := member
	if err := ecs.Add(w, levelEntity, component.LevelMemberComponent.Kind(), &levelMember); err != nil {
		return fail(err)
	}

	rects, err := addMergedTileColliders(w, lvl, member, game)
	if err != nil {
		return fail(err)
	}

	for _, ent := range lvl.Entities {
		x, y := lvl.WorldPosition(ent)
		b, err := BuildBundle(ent.Type, x, y, ent.Props, game)
		if err != nil {
			return fail(err)
		}
		m := member
		b.LevelMember = &m
		if _, err := Spawn(w, b); err != nil {
			return fail(err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"level":    lvl.Name,
		"walls":    rects,
		"entities": len(lvl.Entities),
		"width":    lvl.PixelWidth(),
		"height":   lvl.PixelHeight(),
	}).Info("level loaded")

	return levelEntity, nil
}

// addMergedTileColliders compacts the solid cells into rectangles and spawns one
// static body per rectangle.
func addMergedTileColliders(w *ecs.World, lvl *levels.Level, member component.LevelMember, game *prefabs.GameSpec) (int, error) {
	grid, err := lvl.SolidGrid()
	if err != nil {
		return 0, err
	}

	friction := 0.0
	if game != nil {
		friction = game.WallFriction
	}

	rects := walls.Compact(grid)
	for _, r := range rects {
		c := r.Collider(lvl.CellSize, 0, 0)
		m := member
		b := Bundle{
			Name:      "wall",
			SolidTag:  &component.SolidTag{},
			Transform: &component.Transform{X: c.CenterX, Y: c.CenterY, ScaleX: 1, ScaleY: 1},
			Sprite: &component.Sprite{
				Sheet:  wallSheet,
				Width:  c.Width(),
				Height: c.Height(),
				Scale:  1,
				Color:  wallColor,
			},
			RenderLayer:    &component.RenderLayer{Index: 0},
			CollisionLayer: &component.CollisionLayer{Category: component.CategoryWorld, Mask: ^uint32(0)},
			PhysicsBody: &component.PhysicsBody{
				Width:    c.Width(),
				Height:   c.Height(),
				Friction: friction,
				Static:   true,
			},
			LevelMember: &m,
		}
		if _, err := Spawn(w, b); err != nil {
			return 0, err
		}
	}
	return len(rects), nil
}

// UnloadLevel destroys every level member and returns how many were removed.
func UnloadLevel(w *ecs.World) int {
	if w == nil {
		return 0
	}
	members := w.Query(component.LevelMemberComponent.Kind())
	for _, e := range members {
		ecs.DestroyEntity(w, e)
	}
	return len(members)
}

// CurrentLevel returns the loaded level's description.
func CurrentLevel(w *ecs.World) (*component.Level, bool) {
	e, ok := w.First(component.LevelComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelComponent.Kind())
}

package session

import (
	"fmt"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/ecs/entity"
	"github.com/milk9111/gravitylegacy/ecs/system"
	"github.com/milk9111/gravitylegacy/gravity"
	"github.com/milk9111/gravitylegacy/levels"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/milk9111/gravitylegacy/prefabs"
	"github.com/sirupsen/logrus"
)

// Session owns the simulation: the world, the fixed system order and the level that
// is currently loaded. It has no rendering or device dependencies.
type Session struct {
	spec        *prefabs.GameSpec
	world       *ecs.World
	scheduler   *ecs.Scheduler
	orientation *gravity.Orientation
	physics     *system.PhysicsSystem
	camera      *system.CameraSystem

	levelName string
	ticks     uint64
}

// New builds a session and loads the first level. A nil input source leaves the
// player idle.
func New(spec *prefabs.GameSpec, source system.InputSource, level string) (*Session, error) {
	if spec == nil {
		return nil, fmt.Errorf("session: game spec is required")
	}
	if level == "" {
		level = spec.FirstLevel
	}

	orientation := gravity.New(spec.Gravity)
	physics := system.NewPhysicsSystem(orientation.Gravity())
	camera := system.NewCameraSystem()

	s := &Session{
		spec:        spec,
		world:       ecs.NewWorld(),
		orientation: orientation,
		physics:     physics,
		camera:      camera,
	}
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(source),
		system.NewGravityRotationSystem(orientation, physics),
		system.NewSlimeMovementSystem(orientation),
		physics,
		system.NewSideTrackingSystem(),
		system.NewSlimeRebaseSystem(),
		system.NewHazardSystem(),
		system.NewLevelProgressSystem(),
		system.NewRespawnSystem(orientation, physics),
		system.NewSlimeSpriteSystem(),
		system.NewAnimationSystem(),
		camera,
	)

	if _, err := entity.NewCamera(s.world, spec); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err := s.LoadLevel(level); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) World() *ecs.World                 { return s.world }
func (s *Session) Physics() *system.PhysicsSystem    { return s.physics }
func (s *Session) Orientation() *gravity.Orientation { return s.orientation }
func (s *Session) Spec() *prefabs.GameSpec           { return s.spec }
func (s *Session) LevelName() string                 { return s.levelName }
func (s *Session) Ticks() uint64                     { return s.ticks }

// Update advances the simulation one fixed step and then performs any level change
// a system asked for.
func (s *Session) Update() error {
	s.scheduler.Update(s.world)
	s.ticks++

	reqEnt, ok := s.world.First(component.LevelChangeRequestComponent.Kind())
	if !ok {
		return nil
	}
	req, _ := ecs.Get(s.world, reqEnt, component.LevelChangeRequestComponent.Kind())
	target := ""
	reason := ""
	if req != nil {
		target = req.TargetLevel
		reason = req.Reason
	}
	ecs.DestroyEntity(s.world, reqEnt)

	logger.Log.WithFields(logrus.Fields{
		"from":   s.levelName,
		"to":     target,
		"reason": reason,
	}).Info("changing level")
	return s.LoadLevel(target)
}

// LoadLevel replaces the current level. The world orientation goes back to its
// initial state and the camera is placed on the new player. If the new level fails
// to load the world is left without a level.
func (s *Session) LoadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	entity.UnloadLevel(s.world)
	if _, err := entity.LoadLevelToWorld(s.world, lvl, s.spec); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.levelName = lvl.Name

	system.ResetOrientation(s.world, s.orientation, s.physics)
	s.camera.Snap(s.world)
	return nil
}

// Reload loads the current level again from scratch.
func (s *Session) Reload() error {
	if s.levelName == "" {
		return fmt.Errorf("session: no level loaded")
	}
	return s.LoadLevel(s.levelName)
}

// SetSpec swaps the tunables used for future spawns and resets gravity magnitude.
func (s *Session) SetSpec(spec *prefabs.GameSpec) {
	if spec == nil {
		return
	}
	s.spec = spec
	s.orientation.SetMagnitude(spec.Gravity)
	s.physics.SetGravity(s.orientation.Gravity())
}

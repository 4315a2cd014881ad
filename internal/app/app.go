package app

import (
	"fmt"
	"log"
	"time"

	"github.com/0xtito/xr-hand/internal/components"
	"github.com/0xtito/xr-hand/internal/config"
	"github.com/0xtito/xr-hand/internal/engine"
	"github.com/0xtito/xr-hand/internal/hand"
	"github.com/0xtito/xr-hand/internal/physics"
	"github.com/0xtito/xr-hand/internal/xr"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	leftHandColor  = rl.NewColor(204, 178, 153, 255)
	rightHandColor = rl.NewColor(153, 178, 204, 255)
	trackedColor   = rl.NewColor(80, 200, 120, 160)
)

// App owns the scene, the physics world and the two schedules that drive
// them: a per-frame update schedule for tracking input, and a fixed-step
// schedule for reconciliation and physics.
type App struct {
	cfg     config.Config
	scene   *engine.Scene
	world   *physics.World
	tracker xr.Tracker
	recon   *hand.Reconciler

	update Schedule
	fixed  *FixedSchedule

	elapsed float64
	paused  bool
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	matching, err := hand.ParseMatchingMode(cfg.Matching)
	if err != nil {
		return nil, err
	}
	hands, err := hand.ParseHandSelection(cfg.Hands)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:   cfg,
		scene: engine.NewScene("hand-presence"),
		world: physics.NewWorld(),
		tracker: &xr.Emulator{
			Amplitude: cfg.Emulator.Amplitude,
			Frequency: cfg.Emulator.Frequency,
		},
	}
	a.world.Timestep = cfg.Timestep
	a.world.Substeps = cfg.Substeps

	a.spawnFloor()
	hand.SpawnPhysicsHands(a.scene, a.world)

	a.recon = hand.NewReconciler(a.scene, cfg.Timestep)
	a.recon.Matching = matching
	a.recon.Hands = hands

	// The reconciler idles until the tracked entity tables exist. Routing
	// the handoff through an event keeps spawn order a wiring detail.
	var tablesReady engine.EventWithArg[*hand.Tables]
	tablesReady.AddListener(a.recon.SetTables)
	tablesReady.Invoke(hand.SpawnTrackedHands(a.scene, a.world))

	a.update.Add("tracking", a.applyTracking)
	a.update.Add("scene-update", a.scene.Update)

	a.fixed = NewFixedSchedule(cfg.Timestep)
	a.fixed.Add("reconcile", func(dt float32) { a.recon.Step() })
	a.fixed.Add("physics-sync", func(dt float32) { a.world.SyncBackend() })
	a.fixed.Add("physics-step", func(dt float32) { a.world.StepSimulation() })
	a.fixed.Add("physics-writeback", func(dt float32) { a.world.Writeback() })
	a.fixed.Add("propagate-transforms", func(dt float32) { a.scene.PropagateTransforms() })

	a.scene.Start()
	a.scene.PropagateTransforms()
	return a, nil
}

func (a *App) spawnFloor() {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.NewVector3(0, -0.05, 0)
	floor.AddComponent(components.NewBoxCollider(rl.NewVector3(4, 0.1, 4)))
	rb := components.NewRigidbody(components.BodyFixed)
	rb.Groups = components.NewCollisionGroups(hand.FloorGroup, components.GroupAll)
	floor.AddComponent(rb)
	a.scene.AddGameObject(floor)
	a.world.AddObject(floor)
}

// applyTracking writes the tracker's joint poses into the tracked entities.
// Untracked joints keep their previous pose.
func (a *App) applyTracking(dt float32) {
	for _, obj := range a.scene.GameObjects {
		joint := engine.GetComponent[*hand.TrackedJoint](obj)
		if joint == nil {
			continue
		}
		pose, ok := a.tracker.JointPose(joint.Hand, hand.JointIndex(joint.Bone), a.elapsed)
		if !ok {
			continue
		}
		obj.Transform.Position = pose.Position
		obj.Transform.Rotation = pose.Orientation
	}
}

// tick advances the simulation by one frame's worth of time.
func (a *App) tick(frameDt float32) {
	if a.paused {
		return
	}
	a.elapsed += float64(frameDt)
	a.update.Run(frameDt)
	a.fixed.Advance(frameDt)
}

// RunHeadless drives the simulation without a window for the given
// duration, at the fixed timestep. Used for soak runs and CI.
func (a *App) RunHeadless(duration time.Duration) {
	frameDt := a.cfg.Timestep
	frames := int(duration.Seconds() / float64(frameDt))
	log.Printf("app: headless run, %d frames at dt=%v", frames, frameDt)
	for i := 0; i < frames; i++ {
		a.tick(frameDt)
	}
	log.Printf("app: headless run complete, %d dynamic bodies, t=%.2fs",
		a.world.DynamicBodyCount(), a.elapsed)
}

// Run opens the render window and drives the simulation until the window
// closes. The camera sits just behind and above the calibrated right palm.
func (a *App) Run() {
	rl.InitWindow(a.cfg.Window.Width, a.cfg.Window.Height, a.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(a.cfg.TargetFPS)

	palm := hand.DefaultPose(hand.Right, hand.JointPalm)
	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, 1.0, 0.25),
		Target:     palm.Position,
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		a.tick(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 32, 255))

		rl.BeginMode3D(camera)
		rl.DrawGrid(10, 0.25)
		a.drawHands()
		rl.EndMode3D()

		a.drawOverlay()
		rl.EndDrawing()
	}
}

func (a *App) drawHands() {
	for _, obj := range a.scene.GameObjects {
		if joint := engine.GetComponent[*hand.TrackedJoint](obj); joint != nil {
			rl.DrawSphere(obj.Global.Position, joint.Radius, trackedColor)
			continue
		}
		body := engine.GetComponent[*hand.BoneBody](obj)
		if body == nil {
			continue
		}
		capsule := engine.GetComponent[*components.CapsuleCollider](obj)
		if capsule == nil {
			continue
		}
		color := rightHandColor
		if body.Hand == hand.Left {
			color = leftHandColor
		}
		start, end := capsule.WorldSegment()
		rl.DrawCapsule(start, end, capsule.Radius, 8, 4, color)
	}
}

func (a *App) drawOverlay() {
	positionMatching := gui.CheckBox(
		rl.NewRectangle(16, 16, 20, 20), "position matching",
		a.recon.Matching == hand.PositionMatching)
	if positionMatching {
		a.recon.Matching = hand.PositionMatching
	} else {
		a.recon.Matching = hand.VelocityMatching
	}
	a.paused = gui.CheckBox(rl.NewRectangle(16, 44, 20, 20), "pause", a.paused)

	rl.DrawText(a.statusLine(), 16, 72, 10, rl.RayWhite)
	rl.DrawFPS(16, 88)
}

func (a *App) statusLine() string {
	return fmt.Sprintf("bodies: %d  hands: %v  matching: %v",
		a.world.DynamicBodyCount(), a.recon.Hands, a.recon.Matching)
}

package components

import (
	"github.com/0xtito/xr-hand/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BodyType mirrors the three rigid-body kinds the physics world distinguishes.
type BodyType int

const (
	// BodyFixed never moves.
	BodyFixed BodyType = iota
	// BodyKinematic is moved directly by game logic; the solver never pushes it.
	BodyKinematic
	// BodyDynamic is integrated from its velocities and resolved against collisions.
	BodyDynamic
)

type Rigidbody struct {
	engine.BaseComponent
	Type            BodyType
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // axis-scaled angular velocity, radians per second
	Mass            float32
	Bounciness      float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32 // 0 = ice, 1 = stops immediately
	UseGravity      bool
	Groups          CollisionGroups
}

func NewRigidbody(bodyType BodyType) *Rigidbody {
	return &Rigidbody{
		Type:       bodyType,
		Mass:       1.0,
		Bounciness: 0.1,
		Friction:   0.2,
		UseGravity: bodyType == BodyDynamic,
		Groups:     NewCollisionGroups(GroupAll, GroupAll),
	}
}

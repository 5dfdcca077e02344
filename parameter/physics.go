package parameter

// Simulation units are abstract cells/meters; +Y points down (screen space)

// Forces
const (
	// GravityFloat is downward gravitational acceleration (units/sec²)
	GravityFloat = 9.81

	// DragCoefficientFloat is the linear drag factor used by the optional drag generator (1/sec)
	DragCoefficientFloat = 0.0
)

// Body defaults
const (
	// DefaultMass is used by scenario bodies that omit mass
	DefaultMass = 1.0

	// DefaultRestitution is energy retention on contact (1 = perfectly elastic)
	DefaultRestitution = 0.8

	// DefaultTerminalSpeed caps body speed (units/sec)
	DefaultTerminalSpeed = 1000.0

	// DefaultRadius is the collider radius for scenario bodies that omit it
	DefaultRadius = 1.0
)

// Spring limits
const (
	// MinSpringStiffness keeps a spring from degenerating to zero stiffness
	MinSpringStiffness = 1e-3

	// DefaultSpringStiffness is used by scenario springs that omit stiffness
	DefaultSpringStiffness = 20.0

	// DefaultSpringDamping is used by scenario springs that omit damping
	DefaultSpringDamping = 0.5
)

// Collision
const (
	// ContactEpsilon is the distance below which two centers are treated as coincident
	ContactEpsilon = 1e-12
)

package scenario

// defaultScene is a small mixed scene: bouncing balls, a static peg, and a spring pair
const defaultScene = `
world:
  width: 120
  height: 60
  gravity: 9.81
  timestep: 16ms
  integrator: semi-implicit-euler
bodies:
  - name: peg
    position: [60, 40]
    radius: 4
    static: true
    restitution: 1
  - name: left
    position: [20, 10]
    velocity: [12, 0]
    mass: 2
    radius: 2
    restitution: 0.9
  - name: right
    position: [100, 12]
    velocity: [-10, -4]
    mass: 1
    radius: 1.5
    restitution: 0.9
  - name: drop
    position: [60, 5]
    mass: 1
    radius: 1.5
    restitution: 0.7
  - name: anchor
    position: [30, 30]
    radius: 1
    static: true
  - name: bob
    position: [38, 30]
    mass: 1
    radius: 1
springs:
  - a: anchor
    b: bob
    stiffness: 6
    damping: 0.2
    rest_length: 6
`

// Default returns the built-in scene
func Default() *File {
	f, err := Parse([]byte(defaultScene))
	if err != nil {
		panic("scenario: built-in scene is invalid: " + err.Error())
	}
	return f
}

package main

import (
	"log"

	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/scenario"
	"github.com/lixenwraith/kinetic/system"
	"github.com/lixenwraith/kinetic/vmath"
)

// summary is the state reported after a headless run
type summary struct {
	Ticks    uint64
	Bodies   int
	Contacts int // Resolved contacts with a non-zero impulse, summed over all ticks
	Kinetic  float64
	Elastic  float64
	Momentum vmath.Vec2
}

// runHeadless steps the scene ticks times at its fixed timestep without a terminal
// Energy and momentum are logged every logEvery ticks, zero disables periodic logging
func runHeadless(scene *scenario.File, ticks, logEvery int) (summary, error) {
	systems, err := scene.NewSystems()
	if err != nil {
		return summary{}, err
	}
	world := engine.NewWorld()
	if _, err := scene.Populate(world); err != nil {
		return summary{}, err
	}
	systems.Install(world)

	contacts := 0
	systems.Collision.AddListener(func(ev system.ContactEvent) {
		if ev.Impulse > 0 {
			contacts++
		}
	})

	for i := 1; i <= ticks; i++ {
		world.Update(scene.World.Timestep)
		if logEvery > 0 && i%logEvery == 0 {
			log.Printf("tick %d: ke=%.4f spring=%.4f p=%v", i, world.TotalKineticEnergy(), world.SpringEnergy(), world.TotalMomentum())
		}
	}

	return summary{
		Ticks:    world.Tick(),
		Bodies:   world.EntityCount(),
		Contacts: contacts,
		Kinetic:  world.TotalKineticEnergy(),
		Elastic:  world.SpringEnergy(),
		Momentum: world.TotalMomentum(),
	}, nil
}

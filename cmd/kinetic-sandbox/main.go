package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic/audio"
	"github.com/lixenwraith/kinetic/engine"
	"github.com/lixenwraith/kinetic/parameter"
	"github.com/lixenwraith/kinetic/scenario"
)

var (
	scenarioFlag   = flag.String("scenario", "", "YAML scenario file (built-in scene when empty)")
	integratorFlag = flag.String("integrator", "", "Override integrator: semi-implicit-euler, explicit-euler, verlet")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/kinetic.log")
	headlessFlag   = flag.Bool("headless", false, "Run without a terminal and print a summary")
	ticksFlag      = flag.Int("ticks", 600, "Ticks to run in headless mode")
	muteFlag       = flag.Bool("mute", false, "Start with impact sounds muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	scene, err := loadScene(*scenarioFlag, *integratorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scenario: %v\n", err)
		os.Exit(1)
	}

	if *headlessFlag {
		sum, err := runHeadless(scene, *ticksFlag, 60)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("ticks=%d bodies=%d contacts=%d kinetic=%.4f elastic=%.4f momentum=(%.4f, %.4f)\n",
			sum.Ticks, sum.Bodies, sum.Contacts, sum.Kinetic, sum.Elastic, sum.Momentum.X, sum.Momentum.Y)
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mKINETIC CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	player := audio.NewImpactPlayer(audio.LoadImpactConfig())
	if err := player.Initialize(); err != nil {
		// Continue silently, terminal output belongs to the renderer
		player = nil
	} else {
		player.SetMuted(*muteFlag)
		defer player.Cleanup()
	}

	sb, err := newSandbox(screen, scene, engine.NewMonotonicTimeProvider(), player)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	run(screen, sb)
}

// loadScene reads the scenario file or the built-in scene and applies the integrator override
func loadScene(path, integrator string) (*scenario.File, error) {
	var scene *scenario.File
	if path == "" {
		scene = scenario.Default()
	} else {
		var err error
		if scene, err = scenario.Load(path); err != nil {
			return nil, err
		}
	}
	if integrator != "" {
		scene.World.Integrator = integrator
		if err := scene.Validate(); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func run(screen tcell.Screen, sb *sandbox) {
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !sb.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			sb.frame()
		}
	}
}

package sim

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// InputSource yields one frame per tick. ok is false once it is exhausted.
type InputSource interface {
	Next() (frame InputFrame, ok bool)
}

// ScriptSource replays a fixed list of frames.
type ScriptSource struct {
	frames []InputFrame
	pos    int
}

func NewScriptSource(frames []InputFrame) *ScriptSource {
	return &ScriptSource{frames: frames}
}

func (s *ScriptSource) Next() (InputFrame, bool) {
	if s.pos >= len(s.frames) {
		return InputFrame{}, false
	}
	f := s.frames[s.pos]
	s.pos++
	return f, true
}

// GameLoop drives a Simulation from an InputSource at a fixed tick rate.
type GameLoop struct {
	sim      *Simulation
	source   InputSource
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop returns a loop running at tickRate ticks per second. A
// tickRate of 0 or less runs as fast as possible.
func NewGameLoop(sim *Simulation, source InputSource, tickRate int) *GameLoop {
	return &GameLoop{
		sim:      sim,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the source is exhausted or Stop is called.
func (g *GameLoop) Run() {
	g.running.Store(true)
	defer g.running.Store(false)

	if g.tickRate <= 0 {
		log.Println("Game loop started (unthrottled)")
		for {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return
			default:
			}
			if !g.tick() {
				return
			}
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !g.tick() {
				return
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Running reports whether Run is executing.
func (g *GameLoop) Running() bool {
	return g.running.Load()
}

func (g *GameLoop) tick() bool {
	frame, ok := g.source.Next()
	if !ok {
		log.Printf("Game loop finished after %d ticks", g.sim.Tick())
		return false
	}
	g.sim.Step(frame)
	return true
}

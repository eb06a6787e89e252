package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/automoto/doomerang-physics/assets"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/replay"
	"github.com/automoto/doomerang-physics/sim"
)

func main() {
	assetsDir := flag.String("assets", "", "Assets directory on disk (empty = embedded levels)")
	levelName := flag.String("level", cfg.C.DefaultLevel, "Level to load")
	spawn := flag.Int("spawn", 0, "Player spawn index")
	input := flag.String("input", "", "Input script, e.g. \"Rx60,RJx1,x30\"")
	ticks := flag.Int("ticks", 0, "Pad or cut the input to this many ticks (0 = script length)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	record := flag.String("record", "", "Save the run as a replay under this name")
	verify := flag.String("verify", "", "Replay and verify the named recording instead of running -input")
	flag.Parse()

	loader := assets.NewLevelLoader()
	if *assetsDir != "" {
		loader = assets.NewLevelLoaderFS(os.DirFS(*assetsDir))
	}

	if *verify != "" {
		if err := verifyReplay(loader, *verify); err != nil {
			log.Fatalf("Replay %q failed: %v", *verify, err)
		}
		log.Printf("Replay %q verified", *verify)
		return
	}

	level, err := loader.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level %q: %v", *levelName, err)
	}

	frames, err := sim.ParseInputScript(*input)
	if err != nil {
		log.Fatalf("Bad input: %v", err)
	}
	frames = sim.PadFrames(frames, *ticks)

	s, err := sim.New(level, sim.Options{Spawn: *spawn})
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	loop := sim.NewGameLoop(s, sim.NewScriptSource(frames), *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Interrupted, stopping...")
		loop.Stop()
	}()

	loop.Run()
	printSnapshot(s.Snapshot())

	if *record != "" {
		store, err := replay.OpenStore(cfg.C.ReplayApp)
		if err != nil {
			log.Fatalf("Failed to open replay store: %v", err)
		}
		if err := replay.Save(store, *record, replay.Capture(s, *spawn, frames)); err != nil {
			log.Fatalf("Failed to save replay: %v", err)
		}
	}
}

func verifyReplay(loader *assets.LevelLoader, name string) error {
	store, err := replay.OpenStore(cfg.C.ReplayApp)
	if err != nil {
		return err
	}
	rec, err := replay.Load(store, name)
	if err != nil {
		return err
	}
	level, err := loader.LoadLevel(rec.Level)
	if err != nil {
		return err
	}
	s, err := sim.New(level, sim.Options{Spawn: rec.Spawn})
	if err != nil {
		return err
	}
	return replay.Verify(s, rec)
}

func printSnapshot(snap sim.Snapshot) {
	p := snap.Player
	fmt.Printf("tick %d\n", snap.Tick)
	fmt.Printf("player  pos (%#x, %#x) vel (%d, %d) flags %#08x dir %d\n",
		p.X, p.Y, p.VelX, p.VelY, uint32(p.Flags), p.Direction)
	fmt.Printf("        jumps %d spike ticks %d water ticks %d\n",
		snap.Stats.Jumps, snap.Stats.SpikeTicks, snap.Stats.WaterTicks)

	for i, n := range snap.NPCs {
		fmt.Printf("npc %-3d pos (%#x, %#x) flags %#08x\n", i, n.X, n.Y, uint32(n.Flags))
	}
	fmt.Printf("bullets %d carets %d blocks broken %d\n", len(snap.Bullets), snap.Carets, snap.BlocksBroken)

	ids := make([]cfg.SoundID, 0, len(snap.Sounds))
	for id := range snap.Sounds {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Printf("sfx %-12s x%d\n", cfg.SoundName(id), snap.Sounds[id])
	}

	fmt.Printf("hash %016x\n", snap.Hash())
}

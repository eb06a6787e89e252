package sim

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/physics"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/yohamta/donburi"
)

// BodyState is the observable state of one body after a tick.
type BodyState struct {
	X, Y       int32
	VelX, VelY int32
	Flags      physics.Flag
	Direction  physics.Direction
}

// PlayerStats are the player's running counters.
type PlayerStats struct {
	Jumps      int
	SpikeTicks int
	WaterTicks int
}

// Snapshot is the full comparable state of a simulation. NPCs and bullets are
// listed in world iteration order, which is stable for a given input history.
type Snapshot struct {
	Tick         uint64
	Player       BodyState
	Stats        PlayerStats
	NPCs         []BodyState
	Bullets      []BodyState
	Carets       int
	Sounds       map[cfg.SoundID]int
	BlocksBroken int
}

func bodyState(b *components.BodyData) BodyState {
	return BodyState{
		X:         b.X,
		Y:         b.Y,
		VelX:      b.VelX,
		VelY:      b.VelY,
		Flags:     b.Flags,
		Direction: b.Direction,
	}
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	w := s.ecs.World
	p := components.Player.Get(s.player)

	snap := Snapshot{
		Tick:   s.tick,
		Player: bodyState(components.Body.Get(s.player)),
		Stats: PlayerStats{
			Jumps:      p.Jumps,
			SpikeTicks: p.SpikeTicks,
			WaterTicks: p.WaterTicks,
		},
		Sounds: make(map[cfg.SoundID]int),
	}

	tags.NPC.Each(w, func(e *donburi.Entry) {
		snap.NPCs = append(snap.NPCs, bodyState(components.Body.Get(e)))
	})
	tags.Bullet.Each(w, func(e *donburi.Entry) {
		snap.Bullets = append(snap.Bullets, bodyState(components.Body.Get(e)))
	})
	tags.Caret.Each(w, func(*donburi.Entry) {
		snap.Carets++
	})

	if entry, ok := components.Audio.First(w); ok {
		for id, n := range components.Audio.Get(entry).Played {
			snap.Sounds[id] = n
		}
	}
	if entry, ok := components.Level.First(w); ok {
		snap.BlocksBroken = components.Level.Get(entry).BlocksBroken
	}

	return snap
}

// Hash returns the FNV-1a hash of the current snapshot.
func (s *Simulation) Hash() uint64 {
	return s.Snapshot().Hash()
}

// Hash returns the FNV-1a hash of the snapshot's fields in a fixed order.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(v any) {
		// Writes to a hash.Hash never fail.
		_ = binary.Write(h, binary.LittleEndian, v)
	}

	write(snap.Tick)
	write(snap.Player)
	write(int64(snap.Stats.Jumps))
	write(int64(snap.Stats.SpikeTicks))
	write(int64(snap.Stats.WaterTicks))

	write(uint32(len(snap.NPCs)))
	for _, b := range snap.NPCs {
		write(b)
	}
	write(uint32(len(snap.Bullets)))
	for _, b := range snap.Bullets {
		write(b)
	}
	write(int64(snap.Carets))

	ids := make([]int, 0, len(snap.Sounds))
	for id := range snap.Sounds {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		write(uint8(id))
		write(int64(snap.Sounds[cfg.SoundID(id)]))
	}
	write(int64(snap.BlocksBroken))

	return h.Sum64()
}

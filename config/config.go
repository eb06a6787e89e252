package config

import "github.com/automoto/doomerang-physics/shared/fixed"

// Config holds settings for the simulation driver.
type Config struct {
	TickRate     int    // ticks per second; 0 runs as fast as possible
	LevelsDir    string // directory of .tmx files inside the assets FS
	DefaultLevel string // level run when none is named
	ReplayApp    string // gdata application name for stored replays
}

// PhysicsConfig contains world physics values. All speeds are sub-pixels per
// tick.
type PhysicsConfig struct {
	// Global physics
	Gravity      int32
	MaxFallSpeed int32
	MaxRiseSpeed int32

	// Submerged entities fall slower and cap lower
	WaterGravity      int32
	WaterMaxFallSpeed int32

	// Conveyor push applied per tick for each force flag
	ForceSpeed int32
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration    int32
	AirAcceleration int32
	MaxWalkSpeed    int32
	Friction        int32
	JumpSpeed       int32

	// Water halves these caps
	WaterMaxWalkSpeed int32
	WaterJumpSpeed    int32

	// Shooting
	ShootCooldown int // frames

	// Dimensions (sub-pixel extents from the anchor)
	HitBounds     fixed.Rect[uint32]
	DisplayBounds fixed.Rect[uint32]
}

// NPCConfig contains walker NPC configuration
type NPCConfig struct {
	WalkSpeed    int32
	Gravity      int32
	MaxFallSpeed int32

	// NPCs placed with a size at or above LargeSize scan further and
	// shift their tile origin by LargeOffset.
	LargeSize   int
	LargeOffset int32

	HitBounds      fixed.Rect[uint32]
	LargeHitBounds fixed.Rect[uint32]
	BossHitBounds  fixed.Rect[uint32]
}

// BulletConfig contains player projectile configuration
type BulletConfig struct {
	Speed     int32
	Lifetime  int // frames
	HitBounds fixed.Rect[uint32]
}

// CaretConfig contains particle lifetimes in frames
type CaretConfig struct {
	Lifetimes       map[CaretKind]int
	DefaultLifetime int
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var NPC NPCConfig
var Bullet BulletConfig
var Caret CaretConfig

func init() {
	C = &Config{
		TickRate:     50,
		LevelsDir:    "levels",
		DefaultLevel: "cave",
		ReplayApp:    "doomerang_physics",
	}

	// Physics Config
	Physics = PhysicsConfig{
		// Global physics
		Gravity:      0x50,
		MaxFallSpeed: 0x5ff,
		MaxRiseSpeed: -0x5ff,

		WaterGravity:      0x28,
		WaterMaxFallSpeed: 0x2ff,

		ForceSpeed: 0x88,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		Acceleration:    0x55,
		AirAcceleration: 0x20,
		MaxWalkSpeed:    0x32c,
		Friction:        0x33,
		JumpSpeed:       0x500,

		WaterMaxWalkSpeed: 0x196,
		WaterJumpSpeed:    0x280,

		ShootCooldown: 8,

		// Dimensions
		HitBounds:     fixed.NewRect[uint32](0xa00, 0x1000, 0xa00, 0x1000),
		DisplayBounds: fixed.NewRect[uint32](0x1000, 0x1000, 0x1000, 0x1000),
	}

	NPC = NPCConfig{
		WalkSpeed:    0x100,
		Gravity:      0x40,
		MaxFallSpeed: 0x5ff,

		LargeSize:   3,
		LargeOffset: -0x1000,

		HitBounds:      fixed.NewRect[uint32](0xc00, 0xc00, 0xc00, 0x1000),
		LargeHitBounds: fixed.NewRect[uint32](0x1800, 0x1800, 0x1800, 0x2000),
		BossHitBounds:  fixed.NewRect[uint32](0x3000, 0x3000, 0x3000, 0x3000),
	}

	Bullet = BulletConfig{
		Speed:     0x600,
		Lifetime:  40,
		HitBounds: fixed.NewRect[uint32](0x400, 0x400, 0x400, 0x400),
	}

	Caret = CaretConfig{
		Lifetimes: map[CaretKind]int{
			CaretBubble:                40,
			CaretProjectileDissipation: 16,
			CaretShoot:                 8,
			CaretLittleParticles:       20,
		},
		DefaultLifetime: 20,
	}
}

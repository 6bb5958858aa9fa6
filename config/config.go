package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
	Title  string
	Level  string // embedded level path
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	RayMaxDistance float64 // length of sightline rays
}

// HitboxConfig describes an attack sensor relative to its owner
type HitboxConfig struct {
	HalfWidth  float64
	HalfHeight float64
	Forward    float64 // offset along facing
	Side       float64 // offset along the facing rotated clockwise
	Damage     uint
}

// GoblinConfig contains all goblin-related configuration values
type GoblinConfig struct {
	Radius         float64
	Mass           float64
	WalkSpeed      float64
	LungeSpeed     float64
	ChaseDistance  float64
	AttackDistance float64
	Health         uint

	// State timers (seconds)
	SpawnIdle     float64 // idle time a fresh goblin starts with
	ChaseIdleGate float64 // idle time must drop below this before a chase starts
	ReturnIdle    float64 // after an attack or a lost target
	RecoverIdle   float64 // after a stagger
	LungeCommit   float64 // attack progress after which the goblin lunges

	SeekMargin float64 // short seek dead zone
	Hitbox     HitboxConfig
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Radius    float64
	Mass      float64
	WalkSpeed float64
	Health    uint
	Hitbox    HitboxConfig
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	KnockbackSpeed  float64
	StaggerDuration float64 // seconds
}

// WaypointConfig contains patrol graph configuration
type WaypointConfig struct {
	Radius   float64
	Margin   float64
	MaxChain int // longest chain followed before a link is treated as a cycle
}

type FenceConfig struct {
	HalfExtent float64
}

type PylonConfig struct {
	HalfExtent float64
	Health     uint
}

// WaveConfig contains wave spawner configuration
type WaveConfig struct {
	Threshold     float64 // seconds without goblins before the next wave
	InitialIdle   float64
	InitialNumber int
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	BarEaseSeconds  float64

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	PylonBarFgColor  color.RGBA
	HUDTextColor     color.RGBA
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	TextY           float64
	HintY           float64
	Title           string
	Hint            string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Label        string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawShapes bool
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Goblin GoblinConfig
var Player PlayerConfig
var Combat CombatConfig
var Waypoint WaypointConfig
var Fence FenceConfig
var Pylon PylonConfig
var Wave WaveConfig
var UI UIConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Grass        = color.RGBA{R: 34, G: 58, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  480,
		Height: 320,
		TPS:    60,
		Title:  "Goblin Siege",
		Level:  "levels/village.tmx",
	}

	Physics = PhysicsConfig{
		RayMaxDistance: 1000,
	}

	Goblin = GoblinConfig{
		Radius:         8,
		Mass:           1,
		WalkSpeed:      40,
		LungeSpeed:     120,
		ChaseDistance:  60,
		AttackDistance: 60,
		Health:         3,

		SpawnIdle:     5.0,
		ChaseIdleGate: 2.0,
		ReturnIdle:    4.0,
		RecoverIdle:   3.0,
		LungeCommit:   0.375,

		SeekMargin: 4.0,
		Hitbox: HitboxConfig{
			HalfWidth:  6,
			HalfHeight: 6,
			Forward:    6,
			Side:       3,
			Damage:     1,
		},
	}

	Player = PlayerConfig{
		Radius:    16,
		Mass:      100,
		WalkSpeed: 100,
		Health:    10,
		Hitbox: HitboxConfig{
			HalfWidth:  10,
			HalfHeight: 10,
			Forward:    18,
			Side:       0,
			Damage:     1,
		},
	}

	Combat = CombatConfig{
		KnockbackSpeed:  60,
		StaggerDuration: 0.5,
	}

	Waypoint = WaypointConfig{
		Radius:   4,
		Margin:   8,
		MaxChain: 64,
	}

	Fence = FenceConfig{HalfExtent: 16}

	Pylon = PylonConfig{
		HalfExtent: 16,
		Health:     10,
	}

	Wave = WaveConfig{
		Threshold:     15,
		InitialIdle:   15,
		InitialNumber: 1,
	}

	UI = UIConfig{
		HealthBarWidth:   100,
		HealthBarHeight:  6,
		HealthBarMargin:  8,
		BarEaseSeconds:   0.3,
		HealthBarBgColor: DarkGrey,
		HealthBarFgColor: Red,
		PylonBarFgColor:  LightBlue,
		HUDTextColor:     White,
	}

	GameOver = GameOverConfig{
		BackgroundColor: BlackOverlay,
		TitleColor:      Red,
		TextColor:       White,
		TitleY:          120,
		TextY:           150,
		HintY:           190,
		Title:           "THE VILLAGE HAS FALLEN",
		Hint:            "Press Enter to try again",
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Label:        "PAUSED",
	}
}

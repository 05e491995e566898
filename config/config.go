package config

import (
	"image/color"

	"github.com/automoto/cooter/store"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = iota

// SteeringMode selects how movement keys drive the turtle.
type SteeringMode int

const (
	SteeringTank     SteeringMode = iota // keys turn and walk relative to heading
	SteeringBirdsEye                     // keys move along fixed world axes
)

// String returns the label shown in the HUD and settings.
func (m SteeringMode) String() string {
	if m == SteeringBirdsEye {
		return "Bird's-eye"
	}
	return "Tank"
}

// Key returns the value stored in settings and accepted by ParseSteering.
func (m SteeringMode) Key() string {
	if m == SteeringBirdsEye {
		return "birds_eye"
	}
	return "tank"
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	AppName string
}

// MovementConfig contains actor movement configuration
type MovementConfig struct {
	DefaultSteering SteeringMode
	PlayerRadius    float64 // collision half-size in world units
	NPCRadius       float64
	MaxFrameDelta   float64 // seconds; larger frame gaps are clamped
	StepInterval    float64 // seconds of walking between footstep sounds
}

// NPCConfig contains wandering animal configuration
type NPCConfig struct {
	WanderRadius    float64 // max distance from home before turning back
	MinDecisionTime float64 // seconds between brain decisions
	MaxDecisionTime float64
	WalkChance      float64 // probability a decision starts walking
	TurnChance      float64 // probability a decision turns
	TalkRadius      float64 // player must be this close to interact
	HoverHeight     float64 // pixels; gween bob amplitude
	HoverPeriod     float64 // seconds for one bob
	AimSlack        float64 // radians of heading error tolerated when heading home
}

// GrainConfig contains Time Grain collectible configuration
type GrainConfig struct {
	Size        float64 // world units
	PulsePeriod float64 // seconds for one pulse
	PulseMin    float64 // scale
	PulseMax    float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	PixelsPerUnit   float64 // screen pixels per world unit at zoom 1
	ZoomDuration    float64 // seconds for realm-enter zoom tween
	ZoomFrom        float64
}

// RealmConfig contains realm map configuration
type RealmConfig struct {
	PixelsPerUnit float64 // Tiled pixels per world unit
	Start         string  // realm loaded on new game
	Order         []string
}

// WalletConfig contains chain RPC configuration
type WalletConfig struct {
	RPCURL      string
	CallTimeout float64 // seconds
	MintCost    int     // grains debited per commemorative mint
	ContractTo  string  // recipient address of mint transactions
}

// StoreConfig contains persistence configuration
type StoreConfig struct {
	LeaderboardSize   int
	AutosaveSeconds   float64
	DefaultPlayerName string
	ListPrice         int             // grains asked for a token listed from the hub
	SeedListings      []store.Listing // traders stocking an empty market
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MessageConfig contains dialogue box configuration
type MessageConfig struct {
	BoxPadding      float64
	BoxColor        color.RGBA
	TextColor       color.RGBA
	NameColor       color.RGBA
	BottomMargin    float64
	HintDuration    float64 // seconds a short hint stays on screen
	InteractHint    string
	LockedPortalFmt string
}

// PaletteConfig contains draw colors for the top-down renderer
type PaletteConfig struct {
	Ground     color.RGBA
	GridLine   color.RGBA
	Rock       color.RGBA
	Portal     color.RGBA
	PortalLock color.RGBA
	Shell      color.RGBA
	ShellRim   color.RGBA
	Head       color.RGBA
	Grain      color.RGBA
	Animals    map[string]color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	Verbose      bool // Log system decisions
	DrawCollider bool // Outline collision boxes
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var NPC NPCConfig
var Grain GrainConfig
var Camera CameraConfig
var Realm RealmConfig
var Wallet WalletConfig
var Store StoreConfig
var Pause PauseConfig
var Menu MenuConfig
var Message MessageConfig
var Palette PaletteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:   640,
		Height:  360,
		AppName: "cooter",
	}

	Movement = MovementConfig{
		DefaultSteering: SteeringTank,
		PlayerRadius:    0.35,
		NPCRadius:       0.4,
		MaxFrameDelta:   0.1,
		StepInterval:    0.35,
	}

	NPC = NPCConfig{
		WanderRadius:    3.0,
		MinDecisionTime: 0.8,
		MaxDecisionTime: 2.5,
		WalkChance:      0.55,
		TurnChance:      0.5,
		TalkRadius:      1.4,
		HoverHeight:     4.0,
		HoverPeriod:     1.2,
		AimSlack:        0.3,
	}

	Grain = GrainConfig{
		Size:        0.4,
		PulsePeriod: 0.8,
		PulseMin:    0.8,
		PulseMax:    1.2,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		PixelsPerUnit:   40,
		ZoomDuration:    0.6,
		ZoomFrom:        0.6,
	}

	Realm = RealmConfig{
		PixelsPerUnit: 16,
		Start:         "meadow",
		Order:         []string{"meadow", "clocktower"},
	}

	Wallet = WalletConfig{
		RPCURL:      "ws://127.0.0.1:8546",
		CallTimeout: 5,
		MintCost:    10,
		ContractTo:  "0x0000000000000000000000000000000000c0073e",
	}

	Store = StoreConfig{
		LeaderboardSize:   10,
		AutosaveSeconds:   30,
		DefaultPlayerName: "Cooter",
		ListPrice:         15,
		SeedListings: []store.Listing{
			{TokenID: "cooter-owl-feather", Seller: "Owl", Price: 12},
			{TokenID: "cooter-fox-bell", Seller: "Fox", Price: 20},
		},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Steering", "Settings", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 40, B: 36, A: 255},
		TitleColor:        BrightGreen,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            70,
		MenuStartY:        150,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Explore", "Settings", "Exit"},
	}

	Message = MessageConfig{
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		NameColor:       BrightYellow,
		BottomMargin:    16.0,
		HintDuration:    2.5,
		InteractHint:    "E to talk",
		LockedPortalFmt: "The portal needs %d Time Grains",
	}

	Palette = PaletteConfig{
		Ground:     color.RGBA{R: 58, G: 110, B: 60, A: 255},
		GridLine:   color.RGBA{R: 66, G: 122, B: 68, A: 255},
		Rock:       color.RGBA{R: 110, G: 104, B: 96, A: 255},
		Portal:     color.RGBA{R: 140, G: 90, B: 255, A: 255},
		PortalLock: color.RGBA{R: 80, G: 60, B: 110, A: 255},
		Shell:      color.RGBA{R: 40, G: 150, B: 90, A: 255},
		ShellRim:   color.RGBA{R: 20, G: 90, B: 50, A: 255},
		Head:       color.RGBA{R: 150, G: 210, B: 120, A: 255},
		Grain:      color.RGBA{R: 255, G: 220, B: 90, A: 255},
		Animals: map[string]color.RGBA{
			"owl":    {R: 150, G: 110, B: 70, A: 255},
			"rabbit": {R: 230, G: 230, B: 230, A: 255},
			"fox":    {R: 230, G: 120, B: 40, A: 255},
			"frog":   {R: 90, G: 200, B: 90, A: 255},
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}

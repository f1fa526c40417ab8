// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import (
	"fmt"
	"strings"
)

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy, in cells per tick.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedStep    float64 `yaml:"speed_step"`  // added every SpeedEvery points
	SpeedEvery   int     `yaml:"speed_every"` // points between speed-ups
	MaxSpeed     float64 `yaml:"max_speed"`
}

// FlappyObstacles defines pipe parameters for Flappy.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// FlappyPlayer defines the bird's placement and hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BrosConfig tunes the side-scrolling platformer. Units are level pixels
// and seconds; the level is 800x480 with y pointing up.
type BrosConfig struct {
	Gravity         float64 `yaml:"gravity"`
	RunSpeed        float64 `yaml:"run_speed"`
	JumpSpeed       float64 `yaml:"jump_speed"`
	DoubleJumpSpeed float64 `yaml:"double_jump_speed"`
	JumpCut         float64 `yaml:"jump_cut"` // vy multiplier per tick while rising with Jump released
	WallSlideSpeed  float64 `yaml:"wall_slide_speed"`
	WallJumpX       float64 `yaml:"wall_jump_x"`
	WallJumpY       float64 `yaml:"wall_jump_y"`
	StompBounce     float64 `yaml:"stomp_bounce"`
	GoombaSpeed     float64 `yaml:"goomba_speed"`
	Goombas         int     `yaml:"goombas"`
	Coins           int     `yaml:"coins"`
	CoinValue       int     `yaml:"coin_value"`
	StompValue      int     `yaml:"stomp_value"`
}

// ClimbConfig tunes the 3D platformer. Units are metres and seconds.
type ClimbConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Speed        float64 `yaml:"speed"`
	CrouchMult   float64 `yaml:"crouch_mult"`
	CrouchHeight float64 `yaml:"crouch_height"` // fraction of standing height
	JumpSpeed    float64 `yaml:"jump_speed"`
	AirJumpMult  float64 `yaml:"air_jump_mult"`
	PunchSeconds float64 `yaml:"punch_seconds"`
	PunchReach   float64 `yaml:"punch_reach"`
	PunchValue   int     `yaml:"punch_value"`
	NPCSpeed     float64 `yaml:"npc_speed"`
	KillY        float64 `yaml:"kill_y"`
	Lives        int     `yaml:"lives"`
	GoalValue    int     `yaml:"goal_value"`
}

// FighterConfig tunes the one-on-one fighter. Units are arena pixels and
// ticks, matching the per-frame numbers of the roster.
type FighterConfig struct {
	Arena     FighterArena           `yaml:"arena"`
	Rounds    FighterRounds          `yaml:"rounds"`
	AI        FighterAI              `yaml:"ai"`
	P1        string                 `yaml:"p1"`
	P2        string                 `yaml:"p2"`
	TwoPlayer bool                   `yaml:"two_player"`
	Roster    map[string]FighterSpec `yaml:"roster"`
}

// FighterArena is the stage geometry.
type FighterArena struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	Gravity    float64 `yaml:"gravity"`
	FrameDelay int     `yaml:"frame_delay"` // ticks per animation frame
	SpecialCD  int     `yaml:"special_cooldown"`
	MaxHealth  int     `yaml:"max_health"`
}

// FighterRounds is the match structure.
type FighterRounds struct {
	BestOf       int     `yaml:"best_of"`
	RoundSeconds float64 `yaml:"round_seconds"`
	ReadySeconds float64 `yaml:"ready_seconds"`
	FightSeconds float64 `yaml:"fight_seconds"`
	OverSeconds  float64 `yaml:"over_seconds"`
}

// FighterAI tunes the CPU opponent.
type FighterAI struct {
	DecideEvery    int     `yaml:"decide_every"`
	Aggressiveness float64 `yaml:"aggressiveness"`
	IdleChance     float64 `yaml:"idle_chance"`
	BlockChance    float64 `yaml:"block_chance"`
	BlockRange     float64 `yaml:"block_range"`
	JumpChance     float64 `yaml:"jump_chance"`
	CloseRange     float64 `yaml:"close_range"`
	FarRange       float64 `yaml:"far_range"`
	WanderChance   float64 `yaml:"wander_chance"`
}

// FighterSpec is one roster entry.
type FighterSpec struct {
	Name    string        `yaml:"name"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Speed   float64       `yaml:"speed"`
	Jump    float64       `yaml:"jump"`
	Punch   FighterAttack `yaml:"punch"`
	Kick    FighterAttack `yaml:"kick"`
	Special FighterAttack `yaml:"special"`
}

// FighterAttack is one attack's frame data and hitbox. The hitbox is
// measured from the fighter's top-left corner when facing right.
type FighterAttack struct {
	Damage   int     `yaml:"damage"`
	Frames   int     `yaml:"frames"`
	HitFrame int     `yaml:"hit_frame"`
	Cooldown int     `yaml:"cooldown"`
	Hitbox   HitRect `yaml:"hitbox"`
}

// HitRect is an attack hitbox.
type HitRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// InvadersConfig tunes the arcade shooter. Units are world units and ticks.
type InvadersConfig struct {
	Rows          int              `yaml:"rows"`
	Cols          int              `yaml:"cols"`
	Spacing       float64          `yaml:"spacing"`
	TopY          float64          `yaml:"top_y"`
	BaseMoveSpeed float64          `yaml:"base_move_speed"` // interval credit per tick
	MoveInterval  float64          `yaml:"move_interval"`
	StepSize      float64          `yaml:"step_size"`
	DropDistance  float64          `yaml:"drop_distance"`
	SpeedFactor   float64          `yaml:"speed_factor"`
	EdgeX         float64          `yaml:"edge_x"`
	ShootChance   float64          `yaml:"shoot_chance"`
	PlayerY       float64          `yaml:"player_y"`
	PlayerSpeed   float64          `yaml:"player_speed"`
	BulletSpeed   float64          `yaml:"bullet_speed"`
	BulletPool    int              `yaml:"bullet_pool"`
	HitRadius     float64          `yaml:"hit_radius"` // alien and player radius
	BulletRadius  float64          `yaml:"bullet_radius"`
	ShieldRadius  float64          `yaml:"shield_radius"`
	Lives         int              `yaml:"lives"`
	AlienValue    int              `yaml:"alien_value"`
	Shields       InvadersShields  `yaml:"shields"`
	Particles     InvadersParticle `yaml:"particles"`
	Difficulty    DifficultyConfig `yaml:"difficulty"`
}

// InvadersShields describes the four bunkers.
type InvadersShields struct {
	Count    int     `yaml:"count"`
	Segments int     `yaml:"segments"`
	Rows     int     `yaml:"rows"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Health   int     `yaml:"health"`
	Y        float64 `yaml:"y"`
}

// InvadersParticle describes explosion debris.
type InvadersParticle struct {
	PerExplosion int     `yaml:"per_explosion"`
	Speed        float64 `yaml:"speed"`
	LifeTicks    int     `yaml:"life_ticks"`
	Gravity      float64 `yaml:"gravity"`
}

// CannonConfig tunes the artillery game. Units are metres, seconds, radians.
type CannonConfig struct {
	Gravity      float64 `yaml:"gravity"`
	LaunchSpeed  float64 `yaml:"launch_speed"`
	BallRadius   float64 `yaml:"ball_radius"`
	TargetX      float64 `yaml:"target_x"`
	TargetY      float64 `yaml:"target_y"`
	TargetZ      float64 `yaml:"target_z"`
	TargetRadius float64 `yaml:"target_radius"`
	Shots        int     `yaml:"shots"`
	ResetSeconds float64 `yaml:"reset_seconds"`
	YawSpeed     float64 `yaml:"yaw_speed"`
	PitchSpeed   float64 `yaml:"pitch_speed"`
	MaxYaw       float64 `yaml:"max_yaw"`
	MinPitch     float64 `yaml:"min_pitch"`
	MaxPitch     float64 `yaml:"max_pitch"`
	InitPitch    float64 `yaml:"initial_pitch"`
	MuzzleLength float64 `yaml:"muzzle_length"`
}

// TypingConfig tunes the rhythm-typing lanes.
type TypingConfig struct {
	Lanes           string  `yaml:"lanes"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedPerLevel   float64 `yaml:"speed_per_level"`
	StartDifficulty float64 `yaml:"start_difficulty"`
	DifficultyStep  float64 `yaml:"difficulty_step"`
	StepSeconds     float64 `yaml:"step_seconds"`
	SpawnMillis     int     `yaml:"spawn_millis"`
	SpawnStepMillis int     `yaml:"spawn_step_millis"`
	MinSpawnMillis  int     `yaml:"min_spawn_millis"`
	PerfectMillis   float64 `yaml:"perfect_millis"`
	GoodMillis      float64 `yaml:"good_millis"`
	OKMillis        float64 `yaml:"ok_millis"`
	SongSeconds     float64 `yaml:"song_seconds"`
	FlashMillis     int     `yaml:"flash_millis"`
}

// HopperConfig tunes the lane hopper.
type HopperConfig struct {
	PlatformWidth float64          `yaml:"platform_width"`
	PlatformDepth float64          `yaml:"platform_depth"`
	PlatformGap   float64          `yaml:"platform_gap"`
	Lookahead     int              `yaml:"lookahead"` // platforms kept ahead of the player
	MinObstacles  int              `yaml:"min_obstacles"`
	MaxObstacles  int              `yaml:"max_obstacles"`
	HitDistance   float64          `yaml:"hit_distance"`
	DriftAmp      float64          `yaml:"drift_amp"`    // sideways swing at level 1
	DriftPeriod   float64          `yaml:"drift_period"` // seconds per swing
	Difficulty    DifficultyConfig `yaml:"difficulty"`
}

// SailConfig tunes the sailing exploration game.
type SailConfig struct {
	Accel          float64      `yaml:"accel"`
	Brake          float64      `yaml:"brake"`
	MaxSpeed       float64      `yaml:"max_speed"`
	Drag           float64      `yaml:"drag"`
	TurnRate       float64      `yaml:"turn_rate"`
	DiscoverMargin float64      `yaml:"discover_margin"`
	IslandValue    int          `yaml:"island_value"`
	WorldRadius    float64      `yaml:"world_radius"`
	Islands        []SailIsland `yaml:"islands"`
}

// SailIsland is one island to discover.
type SailIsland struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

// RacerConfig tunes the synthwave drive.
type RacerConfig struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	Accel        float64 `yaml:"accel"`
	Decel        float64 `yaml:"decel"`
	SteerDivisor float64 `yaml:"steer_divisor"`
	RoadWidth    float64 `yaml:"road_width"`
	RoadMargin   float64 `yaml:"road_margin"`
	PylonEvery   float64 `yaml:"pylon_every"`
	PylonRadius  float64 `yaml:"pylon_radius"`
	CarRadius    float64 `yaml:"car_radius"`
	ScoreUnit    float64 `yaml:"score_unit"` // distance per point
}

// OfficeConfig tunes the office walkabout. Units are map pixels and
// seconds; a floor tile is 16 pixels.
type OfficeConfig struct {
	WalkSpeed   float64     `yaml:"walk_speed"`
	NPCSpeed    float64     `yaml:"npc_speed"`
	WanderMin   float64     `yaml:"wander_min"` // seconds between heading changes
	WanderMax   float64     `yaml:"wander_max"`
	WanderRange float64     `yaml:"wander_range"`
	IdleChance  float64     `yaml:"idle_chance"`
	Reach       float64     `yaml:"reach"` // distance of the talk point ahead of the player
	TalkRadius  float64     `yaml:"talk_radius"`
	TypeRate    float64     `yaml:"type_rate"` // characters revealed per tick
	MeetValue   int         `yaml:"meet_value"`
	Cast        []OfficeNPC `yaml:"cast"`
}

// OfficeNPC is one coworker: where they start on the floor plan and what
// they say, in order.
type OfficeNPC struct {
	Name  string   `yaml:"name"`
	Glyph string   `yaml:"glyph"`
	Col   int      `yaml:"col"`
	Row   int      `yaml:"row"`
	Lines []string `yaml:"lines"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset rewrites a difficulty block for a preset. Fixed turns
// progression off and keeps the configured initial level.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

package config

import "embed"

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultYAML returns the embedded default YAML for a game, or nil.
func DefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.8,
			SpeedStep:    0.2,
			SpeedEvery:   5,
			MaxSpeed:     1.6,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultBrosConfig returns the default platformer configuration.
func DefaultBrosConfig() BrosConfig {
	return BrosConfig{
		Gravity:         800,
		RunSpeed:        160,
		JumpSpeed:       400,
		DoubleJumpSpeed: 350,
		JumpCut:         0.85,
		WallSlideSpeed:  100,
		WallJumpX:       200,
		WallJumpY:       350,
		StompBounce:     300,
		GoombaSpeed:     50,
		Goombas:         5,
		Coins:           16,
		CoinValue:       10,
		StompValue:      20,
	}
}

// DefaultClimbConfig returns the default 3D platformer configuration.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Gravity:      36,
		Speed:        6,
		CrouchMult:   0.5,
		CrouchHeight: 0.6,
		JumpSpeed:    12,
		AirJumpMult:  0.9,
		PunchSeconds: 0.3,
		PunchReach:   1.0,
		PunchValue:   50,
		NPCSpeed:     1.8,
		KillY:        -10,
		Lives:        3,
		GoalValue:    500,
	}
}

// DefaultFighterConfig returns the default fighter configuration with the
// full four-character roster.
func DefaultFighterConfig() FighterConfig {
	return FighterConfig{
		Arena: FighterArena{
			Width:      800,
			Height:     400,
			Padding:    50,
			Gravity:    0.8,
			FrameDelay: 5,
			SpecialCD:  60,
			MaxHealth:  100,
		},
		Rounds: FighterRounds{
			BestOf:       3,
			RoundSeconds: 90,
			ReadySeconds: 2,
			FightSeconds: 1,
			OverSeconds:  2,
		},
		AI: FighterAI{
			DecideEvery:    30,
			Aggressiveness: 0.6,
			IdleChance:     0.1,
			BlockChance:    0.7,
			BlockRange:     150,
			JumpChance:     0.15,
			CloseRange:     80,
			FarRange:       200,
			WanderChance:   0.3,
		},
		P1: "ninja",
		P2: "samurai",
		Roster: map[string]FighterSpec{
			"ninja": {
				Name: "Ninja", Width: 70, Height: 180, Speed: 6, Jump: 18,
				Punch:   FighterAttack{Damage: 4, Frames: 5, HitFrame: 2, Cooldown: 8, Hitbox: HitRect{35, 50, 40, 20}},
				Kick:    FighterAttack{Damage: 7, Frames: 6, HitFrame: 3, Cooldown: 12, Hitbox: HitRect{40, 120, 50, 25}},
				Special: FighterAttack{Damage: 14, Frames: 10, HitFrame: 5, Cooldown: 24, Hitbox: HitRect{0, 0, 120, 180}},
			},
			"samurai": {
				Name: "Samurai", Width: 85, Height: 190, Speed: 4, Jump: 15,
				Punch:   FighterAttack{Damage: 6, Frames: 6, HitFrame: 3, Cooldown: 10, Hitbox: HitRect{45, 60, 55, 30}},
				Kick:    FighterAttack{Damage: 9, Frames: 8, HitFrame: 4, Cooldown: 15, Hitbox: HitRect{50, 130, 60, 35}},
				Special: FighterAttack{Damage: 18, Frames: 12, HitFrame: 7, Cooldown: 30, Hitbox: HitRect{0, 50, 150, 80}},
			},
			"monk": {
				Name: "Monk", Width: 75, Height: 175, Speed: 5, Jump: 20,
				Punch:   FighterAttack{Damage: 5, Frames: 4, HitFrame: 2, Cooldown: 7, Hitbox: HitRect{40, 55, 35, 25}},
				Kick:    FighterAttack{Damage: 8, Frames: 5, HitFrame: 3, Cooldown: 10, Hitbox: HitRect{45, 110, 45, 30}},
				Special: FighterAttack{Damage: 12, Frames: 8, HitFrame: 4, Cooldown: 20, Hitbox: HitRect{20, 40, 100, 100}},
			},
			"ronin": {
				Name: "Ronin", Width: 80, Height: 185, Speed: 5.5, Jump: 16,
				Punch:   FighterAttack{Damage: 5, Frames: 5, HitFrame: 2, Cooldown: 9, Hitbox: HitRect{40, 55, 45, 25}},
				Kick:    FighterAttack{Damage: 8, Frames: 7, HitFrame: 3, Cooldown: 13, Hitbox: HitRect{45, 120, 55, 30}},
				Special: FighterAttack{Damage: 16, Frames: 10, HitFrame: 6, Cooldown: 28, Hitbox: HitRect{10, 30, 130, 70}},
			},
		},
	}
}

// DefaultInvadersConfig returns the default shooter configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Rows:          5,
		Cols:          11,
		Spacing:       2.5,
		TopY:          12,
		BaseMoveSpeed: 0.02,
		MoveInterval:  0.3,
		StepSize:      0.5,
		DropDistance:  1.2,
		SpeedFactor:   1.2,
		EdgeX:         25,
		ShootChance:   0.06,
		PlayerY:       -8,
		PlayerSpeed:   0.5,
		BulletSpeed:   0.5,
		BulletPool:    20,
		HitRadius:     0.9,
		BulletRadius:  0.1,
		ShieldRadius:  0.2,
		Lives:         3,
		AlienValue:    100,
		Shields: InvadersShields{
			Count:    4,
			Segments: 8,
			Rows:     3,
			Width:    3,
			Height:   1,
			Health:   3,
			Y:        -5,
		},
		Particles: InvadersParticle{
			PerExplosion: 15,
			Speed:        0.2,
			LifeTicks:    60,
			Gravity:      0.01,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultCannonConfig returns the default artillery configuration.
// Angles are written as the same decimal literals as cannon.yaml so the
// embedded file and the code parse to identical values.
func DefaultCannonConfig() CannonConfig {
	return CannonConfig{
		Gravity:      9.81,
		LaunchSpeed:  40,
		BallRadius:   0.5,
		TargetX:      0,
		TargetY:      5,
		TargetZ:      -50,
		TargetRadius: 2,
		Shots:        3,
		ResetSeconds: 3,
		YawSpeed:     0.7853981633974483,
		PitchSpeed:   0.5235987755982988,
		MaxYaw:       0.7853981633974483,
		MinPitch:     -0.17453292519943295,
		MaxPitch:     1.2566370614359172,
		InitPitch:    0.39269908169872414,
		MuzzleLength: 1.5,
	}
}

// DefaultTypingConfig returns the default rhythm-typing configuration.
func DefaultTypingConfig() TypingConfig {
	return TypingConfig{
		Lanes:           "QWERTY",
		BaseSpeed:       5,
		SpeedPerLevel:   0.5,
		StartDifficulty: 1,
		DifficultyStep:  0.2,
		StepSeconds:     10,
		SpawnMillis:     1500,
		SpawnStepMillis: 100,
		MinSpawnMillis:  500,
		PerfectMillis:   100,
		GoodMillis:      250,
		OKMillis:        500,
		SongSeconds:     120,
		FlashMillis:     500,
	}
}

// DefaultHopperConfig returns the default lane hopper configuration.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		PlatformWidth: 10,
		PlatformDepth: 2,
		PlatformGap:   2,
		Lookahead:     10,
		MinObstacles:  1,
		MaxObstacles:  3,
		HitDistance:   1,
		DriftAmp:      3,
		DriftPeriod:   4,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
		},
	}
}

// DefaultSailConfig returns the default sailing configuration.
func DefaultSailConfig() SailConfig {
	return SailConfig{
		Accel:          2,
		Brake:          4,
		MaxSpeed:       15,
		Drag:           0.98,
		TurnRate:       0.02,
		DiscoverMargin: 20,
		IslandValue:    100,
		WorldRadius:    500,
		Islands: []SailIsland{
			{Name: "Palm Island", X: 200, Z: 200, Radius: 50},
			{Name: "Rocky Cove", X: -180, Z: 250, Radius: 40},
			{Name: "Treasure Island", X: 300, Z: -150, Radius: 60},
			{Name: "Mystic Peak", X: -300, Z: -200, Radius: 45},
		},
	}
}

// DefaultRacerConfig returns the default drive configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		MaxSpeed:     200,
		Accel:        0.5,
		Decel:        0.3,
		SteerDivisor: 20,
		RoadWidth:    2000,
		RoadMargin:   100,
		PylonEvery:   1500,
		PylonRadius:  40,
		CarRadius:    60,
		ScoreUnit:    100,
	}
}

// DefaultOfficeConfig returns the default office walkabout configuration
// with the full cast.
func DefaultOfficeConfig() OfficeConfig {
	return OfficeConfig{
		WalkSpeed:   100,
		NPCSpeed:    30,
		WanderMin:   1.5,
		WanderMax:   4,
		WanderRange: 48,
		IdleChance:  0.3,
		Reach:       32,
		TalkRadius:  40,
		TypeRate:    2,
		MeetValue:   100,
		Cast: []OfficeNPC{
			{Name: "Michael Scott", Glyph: "M", Col: 8, Row: 3, Lines: []string{
				"Welcome to the branch! I am not just your boss, I am your friend.",
				"My door is always open. Well, figuratively. Please knock.",
				"Would I rather be feared or loved? Easy. Both.",
			}},
			{Name: "Jim Halpert", Glyph: "J", Col: 6, Row: 10, Lines: []string{
				"Hey. Keep an eye on my stapler for me?",
				"Some days I just look at the camera and wait.",
				"Sales is a lot like life. Mostly waiting for lunch.",
			}},
			{Name: "Pam Beesly", Glyph: "P", Col: 20, Row: 7, Lines: []string{
				"Dunder Mifflin, this is Pam.",
				"I have a whole folder of drawings nobody has asked to see.",
				"If you need supplies, the closet is down the hall.",
			}},
			{Name: "Angela Martin", Glyph: "A", Col: 12, Row: 14, Lines: []string{
				"Please do not touch anything on my desk.",
				"The party planning committee has rules for a reason.",
				"I keep the accounts balanced. Someone has to.",
			}},
			{Name: "Stanley Hudson", Glyph: "S", Col: 30, Row: 11, Lines: []string{
				"I am doing a crossword. Is this about work?",
				"Did I stutter?",
				"Pretzel day is the only day that matters.",
			}},
			{Name: "Kevin Malone", Glyph: "K", Col: 18, Row: 11, Lines: []string{
				"I brought chili. It is the thing I do best.",
				"Numbers are easy once you stop caring about them.",
				"Do you want some M and Ms? I have a lot.",
			}},
			{Name: "Oscar Martinez", Glyph: "O", Col: 26, Row: 14, Lines: []string{
				"Actually, that is a common misconception.",
				"I reconcile the books every Friday. It is soothing.",
				"Ask me anything about tax law. Please.",
			}},
			{Name: "Phyllis Vance", Glyph: "V", Col: 38, Row: 7, Lines: []string{
				"I knit this sweater myself. Do you like it?",
				"Bob Vance, Vance Refrigeration, says hello.",
				"Close the window, it is freezing in here.",
			}},
			{Name: "Creed Bratton", Glyph: "C", Col: 50, Row: 12, Lines: []string{
				"Nobody steals from Creed Bratton.",
				"I have been here since before this building was here.",
				"If anyone asks, I am in quality assurance.",
			}},
			{Name: "Ryan Howard", Glyph: "R", Col: 40, Row: 4, Lines: []string{
				"I am working on a startup idea. It is big.",
				"Technically I am still the temp.",
				"Do not tell anyone I was napping.",
			}},
			{Name: "Kelly Kapoor", Glyph: "L", Col: 28, Row: 2, Lines: []string{
				"Oh my god, did you hear what happened?",
				"I have so many opinions about the party theme.",
				"Customer service is basically talking, which I love.",
			}},
			{Name: "Toby Flenderson", Glyph: "T", Col: 6, Row: 17, Lines: []string{
				"Hi. HR. Do you have a minute?",
				"Please remember to fill out your forms.",
				"I am just going to sit back here.",
			}},
			{Name: "Darryl Philbin", Glyph: "W", Col: 45, Row: 17, Lines: []string{
				"Warehouse needs the forklift forms signed.",
				"Keep it simple and the day goes easy.",
				"I play keys on the weekends. Come through sometime.",
			}},
		},
	}
}

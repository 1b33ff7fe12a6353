package level

// Builtin defines the three campaign tracks with increasing speed.
// Spacing is tuned for the default physics (360 u/s base speed, 860 u/s
// jump, 2300 u/s² gravity): a full jump arc travels roughly 270 world
// units at 1.0x speed, so gaps between hazards stay comfortably above
// that at each track's multiplier.
var Builtin = []Level{
	{
		ID:              "liftoff",
		Name:            "Liftoff",
		Length:          4500,
		SpeedMultiplier: 1.0,
		Obstacles: []Obstacle{
			{Kind: Spike, X: 600, Width: 42, Height: 42},
			{Kind: Spike, X: 1050, Width: 42, Height: 42},
			{Kind: Block, X: 1500, Width: 48, Height: 72},
			{Kind: Spike, X: 2000, Width: 42, Height: 42},
			{Kind: Spike, X: 2400, Width: 42, Height: 42},
			{Kind: Spike, X: 2800, Width: 42, Height: 42},
			{Kind: Spike, X: 2842, Width: 42, Height: 42},
			{Kind: Block, X: 3300, Width: 60, Height: 84},
			{Kind: Spike, X: 3800, Width: 42, Height: 42},
			{Kind: Spike, X: 4200, Width: 42, Height: 42},
		},
	},
	{
		ID:              "overdrive",
		Name:            "Overdrive",
		Length:          6000,
		SpeedMultiplier: 1.15,
		Obstacles: []Obstacle{
			{Kind: Spike, X: 550, Width: 42, Height: 42},
			{Kind: Block, X: 950, Width: 48, Height: 84},
			{Kind: Spike, X: 1400, Width: 42, Height: 42},
			{Kind: Spike, X: 1442, Width: 42, Height: 42},
			{Kind: Block, X: 1900, Width: 60, Height: 96},
			{Kind: Spike, X: 2350, Width: 42, Height: 42},
			{Kind: Spike, X: 2750, Width: 42, Height: 42},
			{Kind: Spike, X: 2792, Width: 42, Height: 42},
			{Kind: Block, X: 3250, Width: 48, Height: 84},
			{Kind: Spike, X: 3700, Width: 42, Height: 42},
			{Kind: Block, X: 4150, Width: 60, Height: 96},
			{Kind: Spike, X: 4600, Width: 42, Height: 42},
			{Kind: Spike, X: 4642, Width: 42, Height: 42},
			{Kind: Spike, X: 5100, Width: 42, Height: 42},
			{Kind: Block, X: 5550, Width: 48, Height: 84},
		},
	},
	{
		ID:              "hyperdrive",
		Name:            "Hyperdrive",
		Length:          7500,
		SpeedMultiplier: 1.3,
		Obstacles: []Obstacle{
			{Kind: Spike, X: 500, Width: 42, Height: 42},
			{Kind: Spike, X: 900, Width: 42, Height: 42},
			{Kind: Spike, X: 942, Width: 42, Height: 42},
			{Kind: Block, X: 1400, Width: 60, Height: 96},
			{Kind: Spike, X: 1850, Width: 42, Height: 42},
			{Kind: Spike, X: 1892, Width: 42, Height: 42},
			{Kind: Spike, X: 1934, Width: 42, Height: 42},
			{Kind: Block, X: 2400, Width: 48, Height: 108},
			{Kind: Spike, X: 2850, Width: 42, Height: 42},
			{Kind: Block, X: 3300, Width: 60, Height: 96},
			{Kind: Spike, X: 3750, Width: 42, Height: 42},
			{Kind: Spike, X: 3792, Width: 42, Height: 42},
			{Kind: Block, X: 4250, Width: 48, Height: 108},
			{Kind: Spike, X: 4700, Width: 42, Height: 42},
			{Kind: Spike, X: 4742, Width: 42, Height: 42},
			{Kind: Spike, X: 4784, Width: 42, Height: 42},
			{Kind: Spike, X: 5250, Width: 42, Height: 42},
			{Kind: Block, X: 5700, Width: 60, Height: 96},
			{Kind: Spike, X: 6150, Width: 42, Height: 42},
			{Kind: Spike, X: 6192, Width: 42, Height: 42},
			{Kind: Block, X: 6700, Width: 48, Height: 108},
			{Kind: Spike, X: 7150, Width: 42, Height: 42},
		},
	},
}

package preset

// Grammar bundles everything needed to run one plant grammar: the axiom and
// rule lines plus the defaults a generation run starts from.
type Grammar struct {
	Name       string   `json:"name" yaml:"name"`
	Axiom      string   `json:"axiom" yaml:"axiom"`
	Rules      []string `json:"rules" yaml:"rules"`
	Iterations int      `json:"iterations" yaml:"iterations"`
	Angle      float32  `json:"angle" yaml:"angle"`
	Step       float32  `json:"step" yaml:"step"`
	Capacity   int      `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

func Builtin() []Grammar {
	build := func(name, axiom string, iterations int, angle, step float32, rules ...string) Grammar {
		return Grammar{
			Name:       name,
			Axiom:      axiom,
			Rules:      rules,
			Iterations: iterations,
			Angle:      angle,
			Step:       step,
		}
	}

	return []Grammar{
		// Straight trunk with two leafed side shoots per level.
		build("sapling", "T", 4, 28, 1,
			"T = M[+ML][-ML]T"),
		// Broad deterministic crown, branches in all four directions.
		build("oak", "T", 5, 25, 1,
			"T = MB",
			"B = [+MB][-MB][^MB][vMB]L"),
		// Narrow conifer, short side branches rolled around the trunk.
		build("pine", "T", 6, 20, 1,
			"T = MM[+ML][-ML]>T"),
		// Classic bracketed fern frond.
		build("fern", "F", 5, 22.5, 1,
			"F = M[+F]M[-F]F"),
		// Stochastic shrub: uneven regrowth gives each seed its own shape.
		build("shrub", "S", 4, 30, 1,
			"S = 3 M[+S][-S]L, 2 M[+S]L, 2 M[-S]L, 1 ML"),
	}
}

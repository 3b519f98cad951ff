package builder

import "github.com/ketlab/kettoride/core"

// UniversityConfig returns the standard board: twelve universities joined
// by gate-labeled routes, including the Bell-state corridor
// Princeton–Carnegie–UChicago with its GeorgiaTech feeder.
func UniversityConfig() MapConfig {
	return MapConfig{
		Universities: map[string]University{
			"MIT":         {X: 840, Y: 120},
			"Harvard":     {X: 800, Y: 80},
			"Princeton":   {X: 760, Y: 220},
			"Carnegie":    {X: 640, Y: 240},
			"UChicago":    {X: 520, Y: 180},
			"GeorgiaTech": {X: 660, Y: 420},
			"Caltech":     {X: 120, Y: 360},
			"Stanford":    {X: 60, Y: 240},
			"Berkeley":    {X: 80, Y: 180},
			"Oxford":      {X: 980, Y: 60},
			"Cambridge":   {X: 1020, Y: 100},
			"ETH":         {X: 1000, Y: 200},
		},
		Routes: []RouteConfig{
			// The Bell corridor.
			{From: "Princeton", To: "Carnegie", Gate: GateList{"H"}, Length: 1},
			{From: "GeorgiaTech", To: "Carnegie", Gate: GateList{"I"}, Length: 1},
			{From: "Carnegie", To: "UChicago", Gate: GateList{"CNOT"}, Length: 1},

			// East coast.
			{From: "MIT", To: "Harvard", Gate: GateList{"X", "Z"}, Length: 1},
			{From: "MIT", To: "Princeton", Gate: GateList{"X"}, Length: 2},
			{From: "MIT", To: "UChicago", Gate: GateList{"I"}, Length: 4},

			// Across the pond.
			{From: "Harvard", To: "Oxford", Gate: GateList{"H"}, Length: 3},
			{From: "Oxford", To: "Cambridge", Gate: GateList{"I", "X"}, Length: 1},
			{From: "Oxford", To: "ETH", Gate: GateList{"X"}, Length: 1},
			{From: "Cambridge", To: "ETH", Gate: GateList{"Z"}, Length: 2},
			{From: "ETH", To: "UChicago", Gate: GateList{"Y"}, Length: 2},

			// West coast. Stanford–Berkeley offers two identical X options:
			// two claims of the same connection.
			{From: "Stanford", To: "Berkeley", Gate: GateList{"X", "X"}, Length: 1},
			{From: "Stanford", To: "UChicago", Gate: GateList{"H", "Z"}, Length: 2},
			{From: "Berkeley", To: "Caltech", Gate: GateList{"H"}, Length: 1},
			{From: "Berkeley", To: "UChicago", Gate: GateList{"CNOT"}, Length: 2},
			{From: "Caltech", To: "GeorgiaTech", Gate: GateList{"X"}, Length: 3},
		},
	}
}

// UniversityMap builds the standard board.
func UniversityMap() (*core.Map, error) {
	return Build(UniversityConfig())
}

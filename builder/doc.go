// Package builder constructs core.Map boards: from JSON map-config files
// (the format the game ships its boards in) and from the canned university
// map used by the standard game.
//
// Config format:
//
//	{
//	  "universities": { "MIT": {"x": 120, "y": 40}, ... },
//	  "routes": [
//	    {"from": "MIT", "to": "Harvard", "gate": "H", "length": 2},
//	    {"from": "MIT", "to": "Princeton", "gate": ["X", "Z"], "length": 1}
//	  ]
//	}
//
// "gate" accepts a single label or an array of parallel-option labels; every
// label must parse against the closed quantum gate catalog. University
// positions are carried for renderers and ignored by the engine.
//
// Errors:
//
//	ErrBadConfig              - malformed JSON or failed validation, with detail wrapped.
//	quantum.ErrUnknownGate    - a route names a gate outside the catalog.
package builder

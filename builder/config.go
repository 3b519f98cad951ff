package builder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ketlab/kettoride/core"
	"github.com/ketlab/kettoride/quantum"
)

// ErrBadConfig indicates a malformed or invalid map config.
var ErrBadConfig = errors.New("builder: bad map config")

// MapConfig is the on-disk board description.
type MapConfig struct {
	Universities map[string]University `json:"universities"`
	Routes       []RouteConfig         `json:"routes"`
}

// University carries renderer metadata; the engine only uses the key.
type University struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RouteConfig is one board edge as configured.
type RouteConfig struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Gate   GateList `json:"gate"`
	Length int      `json:"length"`
}

// GateList accepts a single gate label or an array of parallel options.
type GateList []string

// UnmarshalJSON implements the string-or-array config convention.
func (gl *GateList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*gl = GateList{one}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("gate must be a string or an array of strings: %w", err)
	}
	*gl = GateList(many)

	return nil
}

// Load parses a map config from r and builds the board.
func Load(r io.Reader) (*core.Map, error) {
	var cfg MapConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return Build(cfg)
}

// LoadFile parses the map config at path and builds the board.
func LoadFile(path string) (*core.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	defer f.Close()

	return Load(f)
}

// Build constructs a validated board from an already-parsed config.
// Every university becomes a city even if no route touches it; every route
// gate label must resolve against the closed catalog.
func Build(cfg MapConfig) (*core.Map, error) {
	m := core.NewMap()

	// 1. Register configured cities first so isolated ones survive
	for name := range cfg.Universities {
		if err := m.AddCity(name); err != nil {
			return nil, fmt.Errorf("%w: university %q: %w", ErrBadConfig, name, err)
		}
	}

	// 2. Add routes, resolving gate labels through the one parse boundary
	for i, rc := range cfg.Routes {
		gates, err := quantum.ParseGates(rc.Gate)
		if err != nil {
			return nil, fmt.Errorf("%w: route %d (%s–%s): %w", ErrBadConfig, i, rc.From, rc.To, err)
		}
		if _, err = m.AddRoute(rc.From, rc.To, gates, rc.Length); err != nil {
			return nil, fmt.Errorf("%w: route %d (%s–%s): %w", ErrBadConfig, i, rc.From, rc.To, err)
		}
	}

	return m, nil
}

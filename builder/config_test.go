package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketlab/kettoride/builder"
	"github.com/ketlab/kettoride/quantum"
)

const sampleConfig = `{
  "universities": {
    "MIT": {"x": 1, "y": 2},
    "Harvard": {"x": 3, "y": 4},
    "Lonely": {"x": 5, "y": 6}
  },
  "routes": [
    {"from": "MIT", "to": "Harvard", "gate": "H", "length": 2},
    {"from": "MIT", "to": "Harvard", "gate": ["X", "Z"], "length": 1}
  ]
}`

func TestLoad_Sample(t *testing.T) {
	m, err := builder.Load(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.True(t, m.HasCity("Lonely"), "isolated universities become cities")
	st := m.Stats()
	assert.Equal(t, 3, st.CityCount)
	assert.Equal(t, 2, st.RouteCount)

	nbs, err := m.Neighbors("MIT")
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, []quantum.Gate{quantum.GateH}, nbs[0].Gates)
	assert.Equal(t, []quantum.Gate{quantum.GateX, quantum.GateZ}, nbs[1].Gates)
	assert.Equal(t, 2, nbs[0].Length)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := builder.Load(strings.NewReader("{"))
	assert.ErrorIs(t, err, builder.ErrBadConfig)
}

func TestLoad_UnknownGate(t *testing.T) {
	cfg := `{"routes": [{"from": "A", "to": "B", "gate": "SWAP", "length": 1}]}`
	_, err := builder.Load(strings.NewReader(cfg))
	assert.ErrorIs(t, err, builder.ErrBadConfig)
	assert.ErrorIs(t, err, quantum.ErrUnknownGate)
}

func TestLoad_BadRoute(t *testing.T) {
	cfg := `{"routes": [{"from": "A", "to": "A", "gate": "X", "length": 1}]}`
	_, err := builder.Load(strings.NewReader(cfg))
	assert.ErrorIs(t, err, builder.ErrBadConfig)
}

func TestGateList_UnmarshalRejectsNumbers(t *testing.T) {
	cfg := `{"routes": [{"from": "A", "to": "B", "gate": 7, "length": 1}]}`
	_, err := builder.Load(strings.NewReader(cfg))
	assert.ErrorIs(t, err, builder.ErrBadConfig)
}

func TestUniversityMap(t *testing.T) {
	m, err := builder.UniversityMap()
	require.NoError(t, err)

	st := m.Stats()
	assert.Equal(t, 12, st.CityCount)
	assert.Equal(t, 16, st.RouteCount)
	assert.Zero(t, st.ClaimedCount, "a fresh board has no claims")

	// The Bell corridor must be present with its exact gates.
	for _, want := range []struct {
		city  string
		gate  quantum.Gate
		other string
	}{
		{"Princeton", quantum.GateH, "Carnegie"},
		{"GeorgiaTech", quantum.GateI, "Carnegie"},
		{"UChicago", quantum.GateCNOT, "Carnegie"},
	} {
		nbs, err := m.Neighbors(want.city)
		require.NoError(t, err)
		var found bool
		for _, r := range nbs {
			if other, _ := r.Other(want.city); other == want.other {
				assert.Contains(t, r.Gates, want.gate)
				found = true
			}
		}
		assert.True(t, found, "%s must connect to %s", want.city, want.other)
	}
}

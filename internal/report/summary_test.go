package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eiyeron/six/internal/battle"
)

func sampleSummary() *Summary {
	s := NewSummary()
	s.Add(battle.SimResult{Win: true, Duration: 20, Turns: 2, DamageByActor: map[string]int{"One (ally#0)": 60, "Robot (enemy#0)": 20}})
	s.Add(battle.SimResult{Win: false, Duration: 40, Turns: 5, DamageByActor: map[string]int{"One (ally#0)": 20}})
	return s
}

func TestSummary_CountsTimeoutsApart(t *testing.T) {
	s := sampleSummary()
	s.Add(battle.SimResult{Outcome: "DECISION", Timeout: true, Duration: 900, Turns: 40})

	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Timeouts)
	assert.InDelta(t, 1.0/3, s.WinRate, 1e-9)
}

func TestSummary_Add(t *testing.T) {
	s := sampleSummary()

	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, 1, s.Wins)
	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.InDelta(t, 30.0, s.AvgTime, 1e-9)
	assert.InDelta(t, 3.5, s.AvgTurns, 1e-9)
	assert.Equal(t, 100, s.TotalDamage)
	assert.Equal(t, Share{Total: 80, Ratio: 0.8}, s.ByActor["One (ally#0)"])
	assert.Equal(t, []string{"One (ally#0)", "Robot (enemy#0)"}, s.Actors())
}

func TestSummary_Empty(t *testing.T) {
	s := NewSummary()
	assert.Zero(t, s.WinRate)
	assert.Empty(t, s.Actors())
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Robots x2", sampleSummary()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

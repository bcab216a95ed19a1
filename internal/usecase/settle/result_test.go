package settle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerResult(t *testing.T) {
	tests := []struct {
		name          string
		winnings      float64
		rake          float64
		rbRate        float64
		wantRBValue   float64
		wantResultado float64
	}{
		{"basic rakeback", 150.00, 200.00, 10, 20.00, 170.00},
		{"negative winnings", -500.00, 1000.00, 25, 250.00, -250.00},
		{"zero rake", 42.50, 0, 30, 0, 42.50},
		{"zero rate", 42.50, 300.00, 0, 0, 42.50},
		{"rounds half away from zero", 0, 333.33, 8, 26.67, 26.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rbValue, resultado := PlayerResult(tt.winnings, tt.rake, tt.rbRate)
			assert.Equal(t, tt.wantRBValue, rbValue)
			assert.Equal(t, tt.wantResultado, resultado)
		})
	}
}

func TestPlayerResultCoercesMalformedInput(t *testing.T) {
	rbValue, resultado := PlayerResult(math.NaN(), math.Inf(1), 10)
	assert.Equal(t, 0.0, rbValue)
	assert.Equal(t, 0.0, resultado)
}

func TestPlayerResultDoesNotClampRate(t *testing.T) {
	// Out-of-range rates are the caller's problem; arithmetic proceeds.
	rbValue, _ := PlayerResult(0, 100, 150)
	assert.Equal(t, 150.0, rbValue)
}

func TestAgentRakebackPooledVsDirectDiverge(t *testing.T) {
	players := []AgentPlayer{
		{Rake: 1000, RBRate: 5},
		{Rake: 2000, RBRate: 15},
	}

	pooled := AgentRakeback(players, 10, false)
	assert.Equal(t, 300.0, pooled, "pooled: 3000 rake at blended 10%%")

	direct := AgentRakeback(players, 10, true)
	assert.Equal(t, 350.0, direct, "direct: 1000*5%% + 2000*15%%")

	assert.NotEqual(t, pooled, direct, "the two arrangements must diverge on the same input")
}

func TestAgentRakebackDirectIgnoresAgentRate(t *testing.T) {
	players := []AgentPlayer{{Rake: 500, RBRate: 20}}
	assert.Equal(t, 100.0, AgentRakeback(players, 99, true))
}

func TestAgentRakebackEmpty(t *testing.T) {
	assert.Equal(t, 0.0, AgentRakeback(nil, 10, false))
	assert.Equal(t, 0.0, AgentRakeback(nil, 10, true))
}

func TestAgentResult(t *testing.T) {
	players := []AgentPlayer{
		{Rake: 1000, Winnings: -200, RBRate: 5},
		{Rake: 2000, Winnings: 750, RBRate: 15},
	}

	got := AgentResult(players, 10, false)
	assert.Equal(t, AgentTotals{
		RakeTotal:     3000.00,
		WinningsTotal: 550.00,
		RBTotal:       300.00,
		Resultado:     850.00,
	}, got)

	direct := AgentResult(players, 10, true)
	assert.Equal(t, 350.0, direct.RBTotal)
	assert.Equal(t, 900.0, direct.Resultado)
}

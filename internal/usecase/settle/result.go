package settle

// AgentPlayer is the slice of a player's metrics an agent computation needs.
// RBRate is the player's own rate, which governs in direct mode.
type AgentPlayer struct {
	Rake     float64
	Winnings float64
	RBRate   float64
}

// AgentTotals is the computed aggregate for one agent.
type AgentTotals struct {
	RakeTotal     float64
	WinningsTotal float64
	RBTotal       float64
	Resultado     float64
}

// PlayerResult computes a player's rakeback value and resultado.
// rbRate is a percentage; values outside [0,100] are accepted, not clamped.
func PlayerResult(winnings, rakeTotal, rbRate float64) (rbValue, resultado float64) {
	winnings = Coerce(winnings)
	rbValue = Round2(Coerce(rakeTotal) * Coerce(rbRate) / 100)
	resultado = Round2(winnings + rbValue)
	return rbValue, resultado
}

// AgentRakeback computes an agent's rakeback total. In direct mode each
// player's own rate governs and agentRate is ignored; in pooled mode one
// blended rate applies to the summed rake. The two arrangements diverge on
// the same input and must never be conflated.
func AgentRakeback(players []AgentPlayer, agentRate float64, isDirect bool) float64 {
	if isDirect {
		var total float64
		for _, p := range players {
			total += Round2(Coerce(p.Rake) * Coerce(p.RBRate) / 100)
		}
		return Round2(total)
	}

	var rake float64
	for _, p := range players {
		rake += Coerce(p.Rake)
	}
	return Round2(rake * Coerce(agentRate) / 100)
}

// AgentResult aggregates an agent's players into totals.
func AgentResult(players []AgentPlayer, agentRate float64, isDirect bool) AgentTotals {
	var rake, winnings float64
	for _, p := range players {
		rake += Coerce(p.Rake)
		winnings += Coerce(p.Winnings)
	}

	rbTotal := AgentRakeback(players, agentRate, isDirect)
	return AgentTotals{
		RakeTotal:     Round2(rake),
		WinningsTotal: Round2(winnings),
		RBTotal:       rbTotal,
		Resultado:     Round2(winnings + rbTotal),
	}
}

// Package game is a small player-state model driven by state.State
// computations: healing, earning gold and levelling up.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ib-77/stately/pkg/state"
)

const MaxHealth = 100

type GameState struct {
	PlayerID uuid.UUID
	Health   int
	Gold     int
	Level    int
}

// New returns the state of a fresh player with a random id.
func New(health, gold, level int) GameState {
	return GameState{
		PlayerID: uuid.New(),
		Health:   health,
		Gold:     gold,
		Level:    level,
	}
}

func (g GameState) String() string {
	return fmt.Sprintf("{health:%d gold:%d level:%d}", g.Health, g.Gold, g.Level)
}

// IncreaseHealth heals by amount, capped at MaxHealth.
func IncreaseHealth(amount int) state.State[GameState, state.Unit] {
	return state.Modify(func(g GameState) GameState {
		g.Health = min(g.Health+amount, MaxHealth)
		return g
	})
}

func EarnGold(amount int) state.State[GameState, state.Unit] {
	return state.Modify(func(g GameState) GameState {
		g.Gold += amount
		return g
	})
}

// LevelUp raises the level by one and restores full health.
func LevelUp() state.State[GameState, state.Unit] {
	return state.Modify(func(g GameState) GameState {
		g.Level++
		g.Health = MaxHealth
		return g
	})
}

func noop() state.State[GameState, state.Unit] {
	return state.Pure[GameState](state.Unit{})
}

// ComplexAction heals a wounded player, pays out gold depending on health and
// levels up once the purse reaches 100. Each step looks at the state left by
// the one before it.
func ComplexAction() state.State[GameState, state.Unit] {
	return state.Chain(
		func(g GameState) state.State[GameState, state.Unit] {
			if g.Health < 50 {
				return IncreaseHealth(20)
			}
			return noop()
		},
		func(g GameState) state.State[GameState, state.Unit] {
			if g.Health < 50 {
				return EarnGold(30)
			}
			return EarnGold(10)
		},
		func(g GameState) state.State[GameState, state.Unit] {
			if g.Gold >= 100 {
				return LevelUp()
			}
			return noop()
		},
	)
}

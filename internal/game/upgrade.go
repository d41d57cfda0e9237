package game

import (
	"errors"
	"fmt"

	"github.com/ib-77/stately/pkg/rop/chain"
	"github.com/ib-77/stately/pkg/rop/solo"
	"github.com/ib-77/stately/pkg/state"
)

type Upgrade string

const (
	UpgradeHealth Upgrade = "health"
	UpgradeGold   Upgrade = "gold"
	UpgradeLevel  Upgrade = "level"
)

var ErrUnknownUpgrade = errors.New("unknown upgrade")

func ParseUpgrade(name string) (Upgrade, error) {
	switch u := Upgrade(name); u {
	case UpgradeHealth, UpgradeGold, UpgradeLevel:
		return u, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUpgrade, name)
	}
}

// Apply returns the effect of u. Unknown upgrades leave the state as is.
func (u Upgrade) Apply() state.State[GameState, state.Unit] {
	switch u {
	case UpgradeHealth:
		return IncreaseHealth(10)
	case UpgradeGold:
		return EarnGold(20)
	case UpgradeLevel:
		return LevelUp()
	default:
		return noop()
	}
}

// ApplyUpgrades applies the named upgrades in order, skipping names it does not know.
func ApplyUpgrades(names []string) state.State[GameState, []state.Unit] {
	return state.Traverse(names, func(name string) state.State[GameState, state.Unit] {
		return Upgrade(name).Apply()
	})
}

// ApplyUpgradesStrict applies the named upgrades in order and reports how many
// were applied. It stops at the first unknown name; upgrades before it stay applied.
func ApplyUpgradesStrict(names []string) solo.Step[GameState, int] {
	c := chain.FromValue[GameState](0)
	for _, name := range names {
		c = chain.Then(c, func(applied int) solo.Step[GameState, int] {
			u, err := ParseUpgrade(name)
			if err != nil {
				return solo.Fail[GameState, int](err)
			}
			return solo.Lift(state.Map(u.Apply(), func(state.Unit) int { return applied + 1 }))
		})
	}
	return c.State()
}

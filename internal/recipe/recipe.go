// Package recipe models a cooking pot whose contents are threaded through
// state.State computations.
package recipe

import (
	"strings"

	"github.com/ib-77/stately/pkg/state"
)

// Pot is the list of ingredients added so far, in order.
type Pot []string

// AddIngredient puts ingredient in the pot. The previous pot is left intact.
func AddIngredient(ingredient string) state.State[Pot, state.Unit] {
	return state.Modify(func(p Pot) Pot {
		next := make(Pot, 0, len(p)+1)
		next = append(next, p...)
		return append(next, ingredient)
	})
}

// Cook adds ingredients in order and describes the finished dish.
func Cook(ingredients ...string) state.State[Pot, string] {
	return state.Then(
		state.Traverse(ingredients, AddIngredient),
		state.Gets(func(p Pot) string {
			return "Cooked: " + strings.Join(p, ", ")
		}),
	)
}

// CookRecipe is the house recipe: onions, tomatoes, spices.
func CookRecipe() state.State[Pot, string] {
	return state.FlatMap(AddIngredient("onions"), func(state.Unit) state.State[Pot, string] {
		return state.FlatMap(AddIngredient("tomatoes"), func(state.Unit) state.State[Pot, string] {
			return state.FlatMap(AddIngredient("spices"), func(state.Unit) state.State[Pot, string] {
				return state.Map(state.Get[Pot](), func(p Pot) string {
					return "Cooked: " + strings.Join(p, ", ")
				})
			})
		})
	})
}

package agent

import "github.com/aviary-games/wingspan-engine/internal/state"

func habitatFromString(s string) state.Habitat { return state.Habitat(s) }
func foodFromString(s string) state.FoodType    { return state.FoodType(s) }

// Package cards loads the static bird and bonus card dataset from disk
// into a state.Registry, mirroring the teacher's CardRegistry JSON loader.
package cards

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aviary-games/wingspan-engine/internal/state"
)

// birdFile and bonusFile are the on-disk JSON shapes; they mirror
// state.CardDefinition/BonusCardDefinition field-for-field so no
// translation layer is needed beyond building the order slices.
type birdFile struct {
	Cards []state.CardDefinition `json:"cards"`
}

type bonusFile struct {
	Cards []state.BonusCardDefinition `json:"cards"`
}

// LoadRegistry reads the bird dataset at cardsPath and the bonus dataset at
// bonusCardsPath and builds a populated, ready-to-use Registry.
func LoadRegistry(cardsPath, bonusCardsPath string) (*state.Registry, error) {
	reg := state.NewRegistry()

	var bf birdFile
	if err := loadJSON(cardsPath, &bf); err != nil {
		return nil, fmt.Errorf("load bird cards: %w", err)
	}
	for i := range bf.Cards {
		c := bf.Cards[i]
		if _, exists := reg.Cards[c.ID]; exists {
			return nil, fmt.Errorf("duplicate bird card id %q", c.ID)
		}
		reg.Cards[c.ID] = &c
		reg.CardOrder = append(reg.CardOrder, c.ID)
	}

	var bof bonusFile
	if err := loadJSON(bonusCardsPath, &bof); err != nil {
		return nil, fmt.Errorf("load bonus cards: %w", err)
	}
	for i := range bof.Cards {
		c := bof.Cards[i]
		if _, exists := reg.BonusCards[c.ID]; exists {
			return nil, fmt.Errorf("duplicate bonus card id %q", c.ID)
		}
		reg.BonusCards[c.ID] = &c
		reg.BonusCardOrder = append(reg.BonusCardOrder, c.ID)
	}

	return reg, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Package gallery turns a character listing into cards and renders them as
// an HTML page.
package gallery

import (
	"fmt"

	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/fading"
)

// CardImageSize is the intended display size of a card image before
// responsive scaling.
const CardImageSize = 300

// Card is one rendered character.
type Card struct {
	Key    int
	Name   string
	Status string
	Gender string
	Image  *fading.Image
}

func (c Card) StatusLine() string {
	return fmt.Sprintf("Status : %s", c.Status)
}

func (c Card) GenderLine() string {
	return fmt.Sprintf("Gender : %s", c.Gender)
}

// BuildCards returns one card per result, in result order. Each card gets its
// own image state.
func BuildCards(content *data.Content) []Card {
	if content == nil {
		return nil
	}
	cards := make([]Card, 0, len(content.Results))
	for _, character := range content.Results {
		cards = append(cards, NewCard(character))
	}
	return cards
}

func NewCard(character data.Character) Card {
	return Card{
		Key:    character.ID,
		Name:   character.Name,
		Status: character.Status,
		Gender: character.Gender,
		Image: fading.New(fading.Options{
			Src:    character.Image,
			Alt:    character.Name,
			Width:  CardImageSize,
			Height: CardImageSize,
		}),
	}
}

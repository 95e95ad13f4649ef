package domain

import "fmt"

// Deck is the learn-mode flashcard browser over a shuffled pool. It has
// no score and no terminal state.
type Deck struct {
	ID        string    `json:"id"`
	Region    string    `json:"region"`
	Subregion string    `json:"subregion"`
	Pool      []Country `json:"pool"`
	Pointer   int       `json:"pointer"`
}

// NewDeck filters and shuffles the catalog.
func NewDeck(rng Randomizer, catalog *Catalog, id, region, subregion string) *Deck {
	d := &Deck{ID: id}
	d.Refilter(rng, catalog, region, subregion)
	return d
}

// Refilter replaces the pool with a freshly shuffled one and rewinds.
func (d *Deck) Refilter(rng Randomizer, catalog *Catalog, region, subregion string) {
	d.Region = NormalizeSelector(region)
	d.Subregion = NormalizeSelector(subregion)
	d.Pool = Shuffle(rng, FilterPool(catalog, d.Region, d.Subregion))
	d.Pointer = 0
}

// Next moves forward, wrapping to the first card.
func (d *Deck) Next() {
	if len(d.Pool) == 0 {
		return
	}
	d.Pointer = (d.Pointer + 1) % len(d.Pool)
}

// Prev moves back, wrapping to the last card.
func (d *Deck) Prev() {
	if len(d.Pool) == 0 {
		return
	}
	d.Pointer = (d.Pointer - 1 + len(d.Pool)) % len(d.Pool)
}

// Current returns the visible card.
func (d *Deck) Current() (Country, bool) {
	if len(d.Pool) == 0 {
		return Country{}, false
	}
	return d.Pool[d.Pointer%len(d.Pool)], true
}

// DeckView is the learn screen.
type DeckView struct {
	ID        string `json:"id"`
	Region    string `json:"region"`
	Subregion string `json:"subregion"`
	Summary   string `json:"summary"`
	Available int    `json:"available"`
	Prompt    string `json:"prompt"`
	Progress  string `json:"progress"`
	Empty     bool   `json:"empty"`
	Name      string `json:"name,omitempty"`
	Code      string `json:"code,omitempty"`
	FlagURL   string `json:"flag_url,omitempty"`
}

// RenderDeck projects a deck onto its view.
func RenderDeck(d *Deck, flagBaseURL string) DeckView {
	view := DeckView{
		ID:        d.ID,
		Region:    d.Region,
		Subregion: d.Subregion,
		Available: len(d.Pool),
		Summary:   fmt.Sprintf("%s — Available: %d countries", LevelLabel(d.Region, d.Subregion), len(d.Pool)),
	}
	card, ok := d.Current()
	if !ok {
		view.Empty = true
		view.Prompt = "No countries for this selection."
		view.Name = "—"
		view.Progress = "0/0"
		return view
	}
	view.Prompt = "Flag and country:"
	view.Name = card.Name
	view.Code = card.Code
	view.FlagURL = FlagURL(flagBaseURL, card.Code)
	view.Progress = fmt.Sprintf("%d/%d", d.Pointer%len(d.Pool)+1, len(d.Pool))
	return view
}

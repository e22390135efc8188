package gamedata

// InvestigatorDef defines a playable investigator loaded from JSON.
type InvestigatorDef struct {
	ID         string `json:"id"`         // Unique identifier (e.g., "professor")
	Name       string `json:"name"`       // Display name
	Symbol     string `json:"symbol"`     // Single character for rendering
	HP         int    `json:"hp"`         // Base hit points
	Sanity     int    `json:"sanity"`     // Base sanity; reaching 0 takes the investigator out
	AttackDice int    `json:"attackDice"` // Dice rolled when attacking
	Defense    int    `json:"defense"`    // Dice rolled to cancel hits
	Will       int    `json:"will"`       // Dice rolled on horror checks
	Range      int    `json:"range"`      // Attack range; 1 means melee only
	Moves      int    `json:"moves"`      // Hexes moved per turn
}

// SymbolRune returns the symbol as a rune for rendering.
func (d *InvestigatorDef) SymbolRune() rune {
	return glyphRune(d.Symbol)
}

// InvestigatorsFile represents the structure of investigators.json.
type InvestigatorsFile struct {
	Investigators []InvestigatorDef `json:"investigators"`
}

// LoadInvestigators loads investigator definitions from the embedded investigators.json file.
func LoadInvestigators() ([]InvestigatorDef, error) {
	file, err := Load[InvestigatorsFile]("investigators.json")
	if err != nil {
		return nil, err
	}
	return file.Investigators, nil
}

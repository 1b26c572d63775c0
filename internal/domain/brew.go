package domain

// BrewGuide is a step-by-step recipe for one brewing method.
type BrewGuide struct {
	ID     string   `json:"id"`
	Method string   `json:"method"`
	Steps  []string `json:"steps"`
}

// Drink is a suggested drink shown on the dashboard.
type Drink struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Method []string `json:"method"`
}

// BrewGuides returns the built-in brewing guides in display order.
func BrewGuides() []BrewGuide {
	return []BrewGuide{
		{
			ID:     "pour-over",
			Method: "Pour-over",
			Steps: []string{
				"Prepare a dripper, paper filter, gooseneck kettle and ground coffee",
				"Place the filter in the dripper and rinse it with hot water",
				"Add the ground coffee (usually 15-18 g)",
				"Pour 60 ml of 92-96°C water in a spiral and let it bloom for 30 seconds",
				"Slowly pour the remaining water up to 240 ml in total",
				"Wait for the water to drain through, remove the dripper and serve",
			},
		},
		{
			ID:     "french-press",
			Method: "French press",
			Steps: []string{
				"Add coarsely ground coffee to the press (12-15 g per 200 ml of water)",
				"Pour in 92-96°C water and stir evenly",
				"Put the lid on without pressing and steep for 4 minutes",
				"Press the plunger down slowly and steadily",
				"Pour the coffee out immediately and serve",
			},
		},
		{
			ID:     "moka-pot",
			Method: "Moka pot",
			Steps: []string{
				"Fill the bottom chamber with cold water up to the safety valve",
				"Fill the funnel with finely ground coffee without tamping",
				"Screw the three parts together tightly",
				"Heat over a low to medium flame",
				"Open the lid once you hear gurgling",
				"When the coffee turns pale yellow, take the pot off the heat and cool it with cold water",
				"Pour and serve",
			},
		},
	}
}

// SuggestedDrinks returns the drinks recommended on the dashboard.
func SuggestedDrinks() []Drink {
	return []Drink{
		{
			ID:   "espresso",
			Name: "Espresso",
			Method: []string{
				"Grind fresh coffee beans",
				"Put the grounds in the portafilter and tamp",
				"Brew with 9 bar water pressure for 25-30 seconds",
				"Extract about 30 ml of espresso",
			},
		},
		{
			ID:   "cappuccino",
			Name: "Cappuccino",
			Method: []string{
				"Pull a shot of espresso",
				"Steam the milk and froth it",
				"Layer equal parts espresso, hot milk and foam in the cup",
				"Dust the top with cocoa powder",
			},
		},
	}
}

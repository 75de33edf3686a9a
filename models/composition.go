package models

// SelectedFood is one row of an in-progress meal composition: a catalog
// item plus how many units of it. Quantity never drops below 1.
type SelectedFood struct {
	Food     FoodItem `json:"food"`
	Quantity int      `json:"quantity"`
}

// Composition is the unsaved meal being built by a user. It lives in
// memory only until it is saved into the ledger.
type Composition struct {
	MealType string         `json:"meal_type"`
	Foods    []SelectedFood `json:"foods"`
}

// MacroTotals carries the four derived sums shown on every nutrition card.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

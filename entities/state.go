package entities

// AppState is the single persisted document. Every collection is an ordered
// slice; insertion order is display order.
type AppState struct {
	Items             []Item              `json:"items"`
	ShoppingList      []ShoppingListEntry `json:"shoppingList"`
	Tasks             []Task              `json:"tasks"`
	Locations         []Location          `json:"locations"`
	ProductGroups     []ProductGroup      `json:"productGroups"`
	QuantityUnits     []QuantityUnit      `json:"quantityUnits"`
	ShoppingLocations []ShoppingLocation  `json:"shoppingLocations"`
	Products          []Product           `json:"products"`
	Barcodes          []Barcode           `json:"barcodes"`
	Chores            []Chore             `json:"chores"`
}

func DefaultState() *AppState {
	state := &AppState{}
	state.Normalize()
	return state
}

// Normalize replaces nil collections with empty slices so a partially
// populated or hand-edited state file never yields null arrays.
func (s *AppState) Normalize() {
	if s.Items == nil {
		s.Items = []Item{}
	}
	if s.ShoppingList == nil {
		s.ShoppingList = []ShoppingListEntry{}
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Locations == nil {
		s.Locations = []Location{}
	}
	if s.ProductGroups == nil {
		s.ProductGroups = []ProductGroup{}
	}
	if s.QuantityUnits == nil {
		s.QuantityUnits = []QuantityUnit{}
	}
	if s.ShoppingLocations == nil {
		s.ShoppingLocations = []ShoppingLocation{}
	}
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.Barcodes == nil {
		s.Barcodes = []Barcode{}
	}
	if s.Chores == nil {
		s.Chores = []Chore{}
	}
}

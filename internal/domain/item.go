package domain

// Item is a catalog entry. Status controls whether the item is visible
// on the public catalog page.
type Item struct {
	ID       int64
	Title    string
	Intro    string
	Text     string
	Price    int
	Category string
	Status   bool
}

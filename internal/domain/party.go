package domain

// Party is a political organization that presents candidacies. Color is a
// hex string used when rendering the party's slate.
type Party struct {
	ID     int64
	Name   string
	Color  string
	Symbol string
}

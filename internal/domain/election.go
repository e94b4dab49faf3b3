package domain

// Election is a read-only reference entity.
type Election struct {
	ID   int64
	Name string
	Type string
}

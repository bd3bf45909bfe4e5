package inspect

//go:generate go tool go-enum --names --marshal

// Kind of style expression an entry of checked file holds.
// ENUM(color, number, gradient)
type EntryKind int

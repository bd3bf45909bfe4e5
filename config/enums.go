package config

//go:generate go tool go-enum --names --marshal

// Specification of requested output format.
// ENUM(text, yaml)
type OutputFmt int

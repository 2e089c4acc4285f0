package models

import "github.com/wosher-co/discordinteractions/registry"

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Uint32 returns a pointer to n.
func Uint32(n uint32) *uint32 { return &n }

// Interaction returns a pointer to t.
func Interaction(t registry.InteractionType) *registry.InteractionType { return &t }

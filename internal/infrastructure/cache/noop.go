// Package cache provee el adaptador de caché de lecturas. La única
// implementación actual es un passthrough sin estado: mantiene el puerto
// cableado sin introducir invalidación distribuida.
package cache

import "context"

// Noop nunca acierta y descarta todo Set/Invalidate.
type Noop struct{}

// NewNoop construye el passthrough.
func NewNoop() *Noop { return &Noop{} }

// Get siempre reporta miss.
func (*Noop) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }

// Set descarta el valor.
func (*Noop) Set(_ context.Context, _ string, _ []byte) {}

// Invalidate no hace nada.
func (*Noop) Invalidate(_ context.Context, _ string) {}

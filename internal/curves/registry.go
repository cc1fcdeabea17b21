package curves

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCurve is returned by Lookup for names not in the registry.
var ErrUnknownCurve = errors.New("curves: unknown curve")

var registry = map[string]Curve{
	"lissajous":     Lissajous,
	"rose":          Rose,
	"hypocycloid":   Hypocycloid,
	"butterfly":     Butterfly,
	"maurer_rose":   MaurerRose,
	"spirograph":    Spirograph,
	"fermat_spiral": FermatSpiral,
	"cardioid":      Cardioid,
}

// Lookup resolves a curve by name. Names are case-insensitive and accept
// '-' in place of '_'.
func Lookup(name string) (Curve, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "-", "_")
	c, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownCurve, name, strings.Join(List(), ", "))
	}
	return c, nil
}

// List returns the registered curve names in sorted order.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

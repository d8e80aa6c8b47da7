package domain

import "fmt"

// RouteKey is the (mode, language) pair selecting a specialist policy and
// its localization. Every RouteKey built from validated metadata resolves to
// exactly one generator/locale pair in the registry.
type RouteKey struct {
	Mode     Mode
	Language Language
}

// String renders the route in "mode_lang" form, e.g. "support_hi". This is
// the identifier operators see in decision logs.
func (k RouteKey) String() string {
	return fmt.Sprintf("%s_%s", k.Mode, k.Language)
}

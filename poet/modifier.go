package poet

// Modifier is a TypeScript declaration modifier token. Modifiers are
// emitted in the order a spec declares them; emission substitutes a
// caller-supplied default (usually ModifierPublic) when a spec declares
// none.
type Modifier string

const (
	ModifierExport    Modifier = "export"
	ModifierDeclare   Modifier = "declare"
	ModifierAbstract  Modifier = "abstract"
	ModifierPublic    Modifier = "public"
	ModifierProtected Modifier = "protected"
	ModifierPrivate   Modifier = "private"
	ModifierReadonly  Modifier = "readonly"
	ModifierStatic    Modifier = "static"
	ModifierAsync     Modifier = "async"
	ModifierGet       Modifier = "get"
	ModifierSet       Modifier = "set"
)

// DeclaresField reports whether the modifier turns a constructor parameter
// into a parameter property (a field-producing parameter): the access
// modifiers and readonly do, everything else does not.
func (m Modifier) DeclaresField() bool {
	switch m {
	case ModifierPublic, ModifierProtected, ModifierPrivate, ModifierReadonly:
		return true
	}
	return false
}

// declaresField reports whether any modifier in the list produces a field
// when placed on a constructor parameter.
func declaresField(mods []Modifier) bool {
	for _, m := range mods {
		if m.DeclaresField() {
			return true
		}
	}
	return false
}

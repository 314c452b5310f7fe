package cmdargs

import "strings"

// Mode controls how ambiguous options are classified. Bits can be combined,
// except PreferFlag and PreferParam which are mutually exclusive.
type Mode int

const (
	// PreferFlag makes an unregistered option a flag even when a value follows it.
	// The following token is then classified on its own. It is the default.
	PreferFlag Mode = 1 << iota
	// PreferParam makes an unregistered option a parameter bound to the following token.
	PreferParam
	// NoSplitOnEqualSign disables `name=value` splitting, `=` becomes an ordinary character.
	NoSplitOnEqualSign
	// SingleDashIsMultiFlag treats `-xvf` as the three flags x, v and f.
	SingleDashIsMultiFlag
)

func (m Mode) Has(mode Mode) bool {
	return m&mode != 0
}

// IsValid reports false if both prefer bits are set.
func (m Mode) IsValid() bool {
	return !(m.Has(PreferFlag) && m.Has(PreferParam))
}

func (m Mode) String() string {
	var parts []string
	if m.Has(PreferFlag) {
		parts = append(parts, "PreferFlag")
	}
	if m.Has(PreferParam) {
		parts = append(parts, "PreferParam")
	}
	if m.Has(NoSplitOnEqualSign) {
		parts = append(parts, "NoSplitOnEqualSign")
	}
	if m.Has(SingleDashIsMultiFlag) {
		parts = append(parts, "SingleDashIsMultiFlag")
	}
	if len(parts) == 0 {
		return "Default"
	}
	return strings.Join(parts, "|")
}

package cmdargs

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RolePositional Role = 1 << iota
	RoleFlag
	RoleParam
	RoleParamValue
	RoleInline     // `name=value` in a single token
	RoleBundle     // modifies RoleFlag or RoleParam, or stands alone
	RoleRegistered // modifies RoleFlag, RoleParam, RoleInline or RoleParamValue
)

type Token struct {
	Arg string
	// Name is the option name with leading dashes stripped. For a bundle whose last
	// character continues as a flag or parameter it is that character.
	Name string
	// Value is set for RoleInline and RoleParamValue.
	Value string
	// Bundled holds the single-character flags of a RoleBundle token.
	Bundled []string
	// Role is sum of Role constants. Possible values:
	// RolePositional
	// RoleFlag [| RoleRegistered]                     // lone flag
	// RoleParam [| RoleRegistered]                    // will be followed by RoleParamValue
	// RoleParamValue [| RoleRegistered]               // value of the previous RoleParam token
	// RoleInline [| RoleRegistered]                   // contains Name and Value
	// RoleBundle                                      // Bundled only
	// RoleBundle | RoleFlag | RoleRegistered          // Bundled plus registered Name as a flag
	// RoleBundle | RoleParam | RoleRegistered         // Bundled plus Name followed by RoleParamValue
	Role Role
}

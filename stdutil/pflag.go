package stdutil

import (
	"github.com/spf13/pflag"
)

// GetPFlagFormalNames is GetFormalFlagNames for pflag. Shorthands are included as
// separate names. A flag with NoOptDefVal set (bool and count flags among others)
// can be given without a value and is reported as a bool flag.
func GetPFlagFormalNames(flagSet *pflag.FlagSet) FormalFlagNames {
	flags := make(FormalFlagNames)
	flagSet.VisitAll(func(f *pflag.Flag) {
		isBoolFlag := f.NoOptDefVal != "" || f.Value.Type() == "bool"
		flags[f.Name] = isBoolFlag
		if f.Shorthand != "" {
			flags[f.Shorthand] = isBoolFlag
		}
	})
	return flags
}

// PFlagParamNames returns the names and shorthands of the pflags that require a value
func PFlagParamNames(flagSet *pflag.FlagSet) []string {
	return GetPFlagFormalNames(flagSet).ParamNames()
}

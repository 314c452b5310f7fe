package stdutil

import (
	"flag"
	"sort"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// FormalFlagNames is a map where key is a flag name and value indicates it's a bool flag
type FormalFlagNames map[string]bool

// ParamNames returns the sorted names of the flags that expect a value
func (flags FormalFlagNames) ParamNames() []string {
	names := make([]string, 0, len(flags))
	for flagName, isBoolFlag := range flags {
		if !isBoolFlag {
			names = append(names, flagName)
		}
	}
	sort.Strings(names)
	return names
}

// GetFormalFlagNames returns a map where key is a flag name and value indicates it's a bool flag
func GetFormalFlagNames(flagSet *flag.FlagSet) FormalFlagNames {
	flags := make(FormalFlagNames)
	flagSet.VisitAll(func(f *flag.Flag) {
		isBoolFlag := false
		if boolFlag, ok := f.Value.(boolFlag); ok {
			isBoolFlag = boolFlag.IsBoolFlag()
		}
		flags[f.Name] = isBoolFlag
	})
	return flags
}

// ParamNames returns the names of the non-bool flags defined in flagSet
func ParamNames(flagSet *flag.FlagSet) []string {
	return GetFormalFlagNames(flagSet).ParamNames()
}

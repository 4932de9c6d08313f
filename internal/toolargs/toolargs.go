// Package toolargs turns project settings into argument vectors for the WiX compiler
// (candle) and linker (light). Option strings are tokenized, not interpreted.
package toolargs

import (
	ferrors "git.home.luguber.info/inful/wixproject/internal/foundation/errors"
	"git.home.luguber.info/inful/wixproject/internal/project"
	"github.com/google/shlex"
)

// Split tokenizes a raw option string using shell quoting rules.
func Split(opts string) ([]string, error) {
	args, err := shlex.Split(opts)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryValidation, "malformed option string").
			WithContext("options", opts).
			Build()
	}
	return args, nil
}

// Extensions returns an -ext flag for each extension path, in order.
func Extensions(paths []string) []string {
	args := make([]string, 0, 2*len(paths))
	for _, p := range paths {
		args = append(args, "-ext", p)
	}
	return args
}

// Candle returns the compiler arguments derived from s: its option string followed by
// the extension flags. Extension paths are expanded against the current environment.
func Candle(s *project.Settings) ([]string, error) {
	args, err := Split(s.CandleOptions())
	if err != nil {
		return nil, err
	}
	return append(args, Extensions(expandAll(s.Extensions()))...), nil
}

// Light returns the linker arguments derived from s: its option string, the extension
// flags and, when a language is set, the -cultures flag.
func Light(s *project.Settings) ([]string, error) {
	args, err := Split(s.LightOptions())
	if err != nil {
		return nil, err
	}
	args = append(args, Extensions(expandAll(s.Extensions()))...)
	if lang := s.Language(); lang != "" {
		args = append(args, "-cultures:"+lang)
	}
	return args, nil
}

func expandAll(paths []string) []string {
	for i, p := range paths {
		paths[i] = project.ExpandEnv(p)
	}
	return paths
}

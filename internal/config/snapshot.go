package config

import "git.home.luguber.info/inful/wixproject/internal/project"

// Resolved is the effective view of a project at the moment Resolve was called: paths
// expanded, defaults filled in.
type Resolved struct {
	SourceBaseDir     string   `yaml:"source_base_dir"`
	OutDir            string   `yaml:"out_dir"`
	OutFileName       string   `yaml:"out_file_name"`
	Language          string   `yaml:"language"`
	CandleOptions     string   `yaml:"candle_options"`
	LightOptions      string   `yaml:"light_options"`
	PreserveTempFiles bool     `yaml:"preserve_temp_files"`
	WixNamespaces     []string `yaml:"wix_namespaces"`
	WixExtensions     []string `yaml:"wix_extensions"`
}

// Resolve reads every field of s through its accessors.
func Resolve(s *project.Settings) Resolved {
	return Resolved{
		SourceBaseDir:     s.SourceBaseDir(),
		OutDir:            s.OutDir(),
		OutFileName:       s.OutFileName(),
		Language:          s.Language(),
		CandleOptions:     s.CandleOptions(),
		LightOptions:      s.LightOptions(),
		PreserveTempFiles: s.PreserveTempFiles(),
		WixNamespaces:     s.Namespaces(),
		WixExtensions:     s.Extensions(),
	}
}

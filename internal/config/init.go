package config

import (
	"os"

	ferrors "git.home.luguber.info/inful/wixproject/internal/foundation/errors"
	"git.home.luguber.info/inful/wixproject/internal/logfields"
	"git.home.luguber.info/inful/wixproject/internal/project"
	"gopkg.in/yaml.v3"
)

// Example returns the project file written by Init. Paths are relative to the directory
// the Compiler runs in; the extension paths use WIX, which the WiX Toolset installer sets.
func Example() *ProjectFile {
	str := func(s string) *string { return &s }
	keep := false
	return &ProjectFile{
		SourceBaseDir:     str("files"),
		OutDir:            str("out"),
		OutFileName:       str(project.DefaultOutFileName),
		Language:          str(project.DefaultLanguage),
		CandleOptions:     str(project.DefaultCandleOptions),
		LightOptions:      str(project.DefaultLightOptions),
		PreserveTempFiles: &keep,
		WixNamespaces: []string{
			`xmlns:iis="http://schemas.microsoft.com/wix/IIsExtension"`,
		},
		WixExtensions: []string{
			"%WIX%/bin/WixIIsExtension.dll",
			"%WIX%/bin/WixUIExtension.dll",
		},
	}
}

// Init writes the example project file to path. An existing file is only replaced when
// force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("project file already exists (use --force to overwrite)").
			WithContext(logfields.KeyPath, path).
			Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal example project file").Build()
	}

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write project file").
			WithContext(logfields.KeyPath, path).
			Build()
	}
	return nil
}

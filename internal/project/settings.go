// Package project holds the settings record of an installer project.
//
// A Settings value is built by the caller, read by the build driver and discarded after the
// build. Path fields are stored raw and expanded against the environment when read, so the
// environment at build time wins over the environment at assignment time. Option strings
// and other scalar fields fall back to their defaults until they are explicitly set.
//
// Settings performs no I/O beyond looking up the working directory and environment, cannot
// fail, and is not safe for concurrent mutation.
package project

import (
	"os"
	"slices"

	"git.home.luguber.info/inful/wixproject/internal/hooks"
	"git.home.luguber.info/inful/wixproject/internal/markup"
)

// Defaults applied while the corresponding field has never been set.
const (
	DefaultOutFileName   = "setup"
	DefaultLanguage      = "en-US"
	DefaultCandleOptions = "-sw1076"         // suppress warning 1076
	DefaultLightOptions  = "-sw1076 -sw1079" // suppress warnings 1076 and 1079
)

// Settings is the configuration record of one installer project. The zero value is an
// unset record with every default in effect.
type Settings struct {
	sourceBaseDir     string
	outDir            string
	outFileName       *string
	language          *string
	candleOptions     *string
	lightOptions      *string
	namespaces        []string
	extensions        []string
	preserveTempFiles bool

	// SourceGenerated receives the generated document before it is serialized.
	// Subscribers may edit it in place.
	SourceGenerated hooks.Hook[*markup.Document]

	// SourceFormatted receives the formatted source text before it is written and returns
	// the text to write instead.
	SourceFormatted hooks.Chain[string]

	// SourceSaved receives the path of the source file after it has been written.
	SourceSaved hooks.Hook[string]
}

// New returns an unset Settings.
func New() *Settings {
	return &Settings{}
}

func stringDefault(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}

// SourceBaseDir returns the base directory for relative source paths, expanded.
func (s *Settings) SourceBaseDir() string { return ExpandEnv(s.sourceBaseDir) }

// RawSourceBaseDir returns SourceBaseDir as it was set.
func (s *Settings) RawSourceBaseDir() string { return s.sourceBaseDir }

func (s *Settings) SetSourceBaseDir(dir string) { s.sourceBaseDir = dir }

// OutDir returns the expanded output directory. An unset directory, or one that expands
// to nothing, resolves to the current working directory.
func (s *Settings) OutDir() string {
	if s.outDir != "" {
		if dir := ExpandEnv(s.outDir); dir != "" {
			return dir
		}
	}
	return workingDir()
}

// RawOutDir returns OutDir as it was set.
func (s *Settings) RawOutDir() string { return s.outDir }

func (s *Settings) SetOutDir(dir string) { s.outDir = dir }

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// OutFileName is the package file name without extension.
func (s *Settings) OutFileName() string { return stringDefault(s.outFileName, DefaultOutFileName) }

func (s *Settings) SetOutFileName(name string) { s.outFileName = &name }

// Language is the installer UI culture.
func (s *Settings) Language() string { return stringDefault(s.language, DefaultLanguage) }

func (s *Settings) SetLanguage(lang string) { s.language = &lang }

// CandleOptions is the raw option string for the compiler (candle).
func (s *Settings) CandleOptions() string {
	return stringDefault(s.candleOptions, DefaultCandleOptions)
}

func (s *Settings) SetCandleOptions(opts string) { s.candleOptions = &opts }

// LightOptions is the raw option string for the linker (light).
func (s *Settings) LightOptions() string {
	return stringDefault(s.lightOptions, DefaultLightOptions)
}

func (s *Settings) SetLightOptions(opts string) { s.lightOptions = &opts }

// PreserveTempFiles keeps intermediate build files after a successful build. Failed builds
// keep them regardless.
func (s *Settings) PreserveTempFiles() bool { return s.preserveTempFiles }

func (s *Settings) SetPreserveTempFiles(keep bool) { s.preserveTempFiles = keep }

// Namespaces returns a copy of the extra XML namespace declarations for the source root,
// e.g. `xmlns:iis="http://schemas.microsoft.com/wix/IIsExtension"`, in insertion order.
func (s *Settings) Namespaces() []string { return slices.Clone(s.namespaces) }

// AddNamespaces appends namespace declarations.
func (s *Settings) AddNamespaces(decls ...string) { s.namespaces = append(s.namespaces, decls...) }

// SetNamespaces replaces the namespace declarations with a copy of decls.
func (s *Settings) SetNamespaces(decls []string) { s.namespaces = slices.Clone(decls) }

// Extensions returns a copy of the extension paths in the order they are passed to the tools.
func (s *Settings) Extensions() []string { return slices.Clone(s.extensions) }

// AddExtensions appends extension paths.
func (s *Settings) AddExtensions(paths ...string) { s.extensions = append(s.extensions, paths...) }

// SetExtensions replaces the extension paths with a copy of paths.
func (s *Settings) SetExtensions(paths []string) { s.extensions = slices.Clone(paths) }

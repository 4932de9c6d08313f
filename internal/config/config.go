package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/wixproject/internal/foundation/errors"
	"git.home.luguber.info/inful/wixproject/internal/logfields"
	"git.home.luguber.info/inful/wixproject/internal/project"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the project file looked up when none is given.
const DefaultPath = "wixproject.yaml"

// ProjectFile is the on-disk form of project settings. Pointer fields distinguish keys
// that were omitted from keys explicitly set to their zero value, so omitted keys keep the
// record's defaults.
type ProjectFile struct {
	SourceBaseDir     *string  `yaml:"source_base_dir,omitempty"`
	OutDir            *string  `yaml:"out_dir,omitempty"`
	OutFileName       *string  `yaml:"out_file_name,omitempty"`
	Language          *string  `yaml:"language,omitempty"`
	CandleOptions     *string  `yaml:"candle_options,omitempty"`
	LightOptions      *string  `yaml:"light_options,omitempty"`
	PreserveTempFiles *bool    `yaml:"preserve_temp_files,omitempty"`
	WixNamespaces     []string `yaml:"wix_namespaces,omitempty"`
	WixExtensions     []string `yaml:"wix_extensions,omitempty"`
}

// Parse decodes a project file. Unknown keys are rejected; an empty document is valid.
func Parse(data []byte) (*ProjectFile, error) {
	var f ProjectFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid project file").Fatal().Build()
	}
	return &f, nil
}

// Apply copies every key present in f onto s. Values are copied raw; path expansion is
// left to the record.
func (f *ProjectFile) Apply(s *project.Settings) {
	if f.SourceBaseDir != nil {
		s.SetSourceBaseDir(*f.SourceBaseDir)
	}
	if f.OutDir != nil {
		s.SetOutDir(*f.OutDir)
	}
	if f.OutFileName != nil {
		s.SetOutFileName(*f.OutFileName)
	}
	if f.Language != nil {
		s.SetLanguage(*f.Language)
	}
	if f.CandleOptions != nil {
		s.SetCandleOptions(*f.CandleOptions)
	}
	if f.LightOptions != nil {
		s.SetLightOptions(*f.LightOptions)
	}
	if f.PreserveTempFiles != nil {
		s.SetPreserveTempFiles(*f.PreserveTempFiles)
	}
	s.AddNamespaces(f.WixNamespaces...)
	s.AddExtensions(f.WixExtensions...)
}

// Load reads the project file at path into a new Settings. Once the file has been read and
// decoded, environment files next to it are loaded so that they are visible when paths are
// expanded later. A missing or invalid project file leaves the environment untouched.
func Load(path string) (*project.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.ConfigError("project file not found").
				WithContext(logfields.KeyPath, path).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read project file").
			WithContext(logfields.KeyPath, path).
			Build()
	}

	f, err := Parse(data)
	if err != nil {
		if classified, ok := ferrors.AsClassified(err); ok {
			return nil, classified.WithContext(logfields.KeyPath, path)
		}
		return nil, err
	}

	if _, err := loadEnvFiles(filepath.Dir(path)); err != nil {
		return nil, err
	}

	s := project.New()
	f.Apply(s)
	slog.Debug("Loaded project file", logfields.ProjectFile(path))
	return s, nil
}

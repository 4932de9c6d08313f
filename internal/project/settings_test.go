package project

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsetSettingsDefaults(t *testing.T) {
	for name, s := range map[string]*Settings{"New": New(), "zero value": {}} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "setup", s.OutFileName())
			assert.Equal(t, "en-US", s.Language())
			assert.False(t, s.PreserveTempFiles())
			assert.Equal(t, "-sw1076", s.CandleOptions())
			assert.Equal(t, "-sw1076 -sw1079", s.LightOptions())
			assert.Equal(t, "", s.SourceBaseDir())
			assert.Empty(t, s.Namespaces())
			assert.Empty(t, s.Extensions())
		})
	}
}

func TestExplicitValuesOverrideDefaults(t *testing.T) {
	s := New()
	s.SetOutFileName("MyProduct")
	s.SetLanguage("de-DE")
	s.SetCandleOptions("")
	s.SetLightOptions("-sval")
	s.SetPreserveTempFiles(true)

	assert.Equal(t, "MyProduct", s.OutFileName())
	assert.Equal(t, "de-DE", s.Language())
	assert.Equal(t, "", s.CandleOptions(), "an explicit empty value must not fall back to the default")
	assert.Equal(t, "-sval", s.LightOptions())
	assert.True(t, s.PreserveTempFiles())

	s.SetLanguage("")
	assert.Equal(t, "", s.Language())
}

func TestOutDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	t.Run("unset resolves to working directory", func(t *testing.T) {
		assert.Equal(t, wd, New().OutDir())
	})

	t.Run("empty resolves to working directory", func(t *testing.T) {
		s := New()
		s.SetOutDir("/somewhere")
		s.SetOutDir("")
		assert.Equal(t, wd, s.OutDir())
	})

	t.Run("expanded on read", func(t *testing.T) {
		t.Setenv("WIX_OUT", "/tmp/wix-out")
		s := New()
		s.SetOutDir("$WIX_OUT/msi")
		assert.Equal(t, "/tmp/wix-out/msi", s.OutDir())
		assert.Equal(t, "$WIX_OUT/msi", s.RawOutDir(), "the stored value stays unexpanded")
	})

	t.Run("expansion to nothing resolves to working directory", func(t *testing.T) {
		t.Setenv("WIX_OUT_EMPTY", "")
		s := New()
		s.SetOutDir("$WIX_OUT_EMPTY")
		assert.Equal(t, wd, s.OutDir())
	})

	t.Run("undefined reference is kept", func(t *testing.T) {
		s := New()
		s.SetOutDir(`\\build\drop$\$WIX_OUT_UNDEFINED_X`)
		assert.Equal(t, `\\build\drop$\$WIX_OUT_UNDEFINED_X`, s.OutDir())
	})
}

func TestSourceBaseDirExpandedLazily(t *testing.T) {
	s := New()
	s.SetSourceBaseDir("%WIX_SRC%/files")

	t.Setenv("WIX_SRC", "/first")
	assert.Equal(t, "/first/files", s.SourceBaseDir())

	t.Setenv("WIX_SRC", "/second")
	assert.Equal(t, "/second/files", s.SourceBaseDir(), "expansion must reflect the environment at read time")
	assert.Equal(t, "%WIX_SRC%/files", s.RawSourceBaseDir())

	s.SetSourceBaseDir("")
	assert.Equal(t, "", s.SourceBaseDir())
}

func TestNamespacesKeepInsertionOrder(t *testing.T) {
	s := New()
	s.AddNamespaces("A")
	s.AddNamespaces("B")
	assert.Equal(t, []string{"A", "B"}, s.Namespaces())

	got := s.Namespaces()
	got[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, s.Namespaces(), "callers receive a copy")

	decls := []string{`xmlns:iis="http://schemas.microsoft.com/wix/IIsExtension"`}
	s.SetNamespaces(decls)
	decls[0] = "mutated"
	assert.Equal(t, []string{`xmlns:iis="http://schemas.microsoft.com/wix/IIsExtension"`}, s.Namespaces())
}

func TestExtensionsKeepInsertionOrder(t *testing.T) {
	s := New()
	s.AddExtensions("WixUIExtension.dll", "WixIIsExtension.dll")
	s.AddExtensions("WixNetFxExtension.dll")
	assert.Equal(t, []string{"WixUIExtension.dll", "WixIIsExtension.dll", "WixNetFxExtension.dll"}, s.Extensions())

	s.SetExtensions(nil)
	assert.Empty(t, s.Extensions())
}

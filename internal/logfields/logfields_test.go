package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Hook", KeyHook, "source_saved", Hook("source_saved")},
		{"Subscribers", KeySubscribers, "3", Subscribers(3)},
		{"Subscriber", KeySubscriber, "1", Subscriber(1)},
		{"Path", KeyPath, "/tmp/setup.wxs", Path("/tmp/setup.wxs")},
		{"ProjectFile", KeyProjectFile, "wixproject.yaml", ProjectFile("wixproject.yaml")},
		{"OutDir", KeyOutDir, "/out", OutDir("/out")},
		{"EnvFile", KeyEnvFile, ".env", EnvFile(".env")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

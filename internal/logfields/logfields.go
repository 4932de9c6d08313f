package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyHook        = "hook"
	KeySubscribers = "subscribers"
	KeySubscriber  = "subscriber"
	KeyPath        = "path"
	KeyProjectFile = "project_file"
	KeyOutDir      = "out_dir"
	KeyEnvFile     = "env_file"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Hook(name string) slog.Attr     { return slog.String(KeyHook, name) }
func Subscribers(n int) slog.Attr    { return slog.Int(KeySubscribers, n) }
func Subscriber(i int) slog.Attr     { return slog.Int(KeySubscriber, i) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func ProjectFile(p string) slog.Attr { return slog.String(KeyProjectFile, p) }
func OutDir(d string) slog.Attr      { return slog.String(KeyOutDir, d) }
func EnvFile(p string) slog.Attr     { return slog.String(KeyEnvFile, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

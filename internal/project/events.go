package project

import (
	"errors"
	"log/slog"

	ferrors "git.home.luguber.info/inful/wixproject/internal/foundation/errors"
	"git.home.luguber.info/inful/wixproject/internal/hooks"
	"git.home.luguber.info/inful/wixproject/internal/logfields"
	"git.home.luguber.info/inful/wixproject/internal/markup"
)

// Hook names used in logs and error context.
const (
	HookSourceGenerated = "source_generated"
	HookSourceFormatted = "source_formatted"
	HookSourceSaved     = "source_saved"
)

// FireSourceGenerated delivers doc to the SourceGenerated subscribers. The build driver
// calls it before serializing doc.
func (s *Settings) FireSourceGenerated(doc *markup.Document) error {
	n := s.SourceGenerated.Len()
	if n == 0 {
		return nil
	}
	slog.Debug("Firing project hook", logfields.Hook(HookSourceGenerated), logfields.Subscribers(n))
	return hookError(HookSourceGenerated, s.SourceGenerated.Fire(doc))
}

// FireSourceFormatted passes content through the SourceFormatted subscribers and returns
// the text to write. On failure the unmodified content is returned with the error.
func (s *Settings) FireSourceFormatted(content string) (string, error) {
	n := s.SourceFormatted.Len()
	if n == 0 {
		return content, nil
	}
	slog.Debug("Firing project hook", logfields.Hook(HookSourceFormatted), logfields.Subscribers(n))
	out, err := s.SourceFormatted.Apply(content)
	return out, hookError(HookSourceFormatted, err)
}

// FireSourceSaved notifies the SourceSaved subscribers that the source was written to path.
func (s *Settings) FireSourceSaved(path string) error {
	n := s.SourceSaved.Len()
	if n == 0 {
		return nil
	}
	slog.Debug("Firing project hook", logfields.Hook(HookSourceSaved), logfields.Subscribers(n), logfields.Path(path))
	return hookError(HookSourceSaved, s.SourceSaved.Fire(path))
}

func hookError(hook string, err error) error {
	if err == nil {
		return nil
	}
	ctx := ferrors.ErrorContext{logfields.KeyHook: hook}
	var subErr *hooks.SubscriberError
	if errors.As(err, &subErr) {
		ctx[logfields.KeySubscriber] = subErr.Position
	}
	slog.Debug("Project hook failed", logfields.Hook(hook), logfields.Error(err))
	return ferrors.WrapError(err, ferrors.CategoryHook, hook+" subscriber failed").
		WithContextMap(ctx).
		Build()
}

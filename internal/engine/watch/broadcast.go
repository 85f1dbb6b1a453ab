package watch

import (
	"context"
	"path"
	"strings"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
)

// Broadcaster computes and publishes the post-build payload for the
// live-reload layer.
type Broadcaster struct {
	reloader ports.Reloader
	config   ports.ConfigSource
}

// NewBroadcaster creates a broadcaster publishing through the given reloader.
func NewBroadcaster(reloader ports.Reloader, config ports.ConfigSource) *Broadcaster {
	return &Broadcaster{reloader: reloader, config: config}
}

// Publish ships the result of a successful watch-mode build. When every
// changed path is a stylesheet outside the includes directory, the payload
// is marked as a style-only reload.
func (b *Broadcaster) Publish(ctx context.Context, activeQueue []string, rec *domain.BuildRecord) error {
	payload := domain.ReloadPayload{
		ChangedFiles: activeQueue,
		Build: domain.ReloadBuild{
			Templates: b.prefixedTemplates(rec),
		},
	}
	if b.styleOnly(activeQueue) {
		payload.Subtype = domain.ReloadSubtypeCSS
	}
	return b.reloader.Reload(ctx, payload)
}

// PublishError forwards a build error to the reload layer. Error display
// preempts reload.
func (b *Broadcaster) PublishError(ctx context.Context, buildErr error) error {
	return b.reloader.SendError(ctx, buildErr)
}

// styleOnly reports whether the fast path applies: every changed path has a
// stylesheet extension and none lies under the includes directory. The
// check deliberately inspects input paths, not output artifacts.
func (b *Broadcaster) styleOnly(activeQueue []string) bool {
	if len(activeQueue) == 0 {
		return false
	}
	includes := b.config.Layout().IncludesPath()
	for _, p := range activeQueue {
		if !domain.IsStylesheet(p) || domain.IsWithin(includes, p) {
			return false
		}
	}
	return true
}

// prefixedTemplates flattens the record's non-empty template entries with
// each output URL rewritten to include the configured path prefix.
func (b *Broadcaster) prefixedTemplates(rec *domain.BuildRecord) []domain.TemplateResult {
	if rec == nil {
		return nil
	}
	prefix := b.config.PathPrefix()

	out := make([]domain.TemplateResult, 0, len(rec.Templates))
	for _, t := range rec.Templates {
		if t == (domain.TemplateResult{}) {
			continue
		}
		t.URL = applyPathPrefix(prefix, t.URL)
		out = append(out, t)
	}
	return out
}

// applyPathPrefix joins prefix onto url, preserving a trailing slash.
func applyPathPrefix(prefix, url string) string {
	if prefix == "" || prefix == "/" {
		return url
	}
	trailing := strings.HasSuffix(url, "/")
	joined := path.Join("/", prefix, url)
	if trailing && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}

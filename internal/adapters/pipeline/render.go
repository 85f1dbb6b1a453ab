package pipeline

import (
	"bytes"
	"html/template"
	"os"
	"path"
	"strings"

	"github.com/kilnworks/kiln/internal/core/domain"
	"github.com/kilnworks/kiln/internal/core/ports"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// renderContext is the data passed to templates and layouts.
type renderContext struct {
	Page    map[string]any
	Data    map[string]any
	Content template.HTML
}

// renderer turns one input file into a TemplateResult. Parsed layouts are
// cached for the duration of a pass.
type renderer struct {
	config  ports.ConfigSource
	layout  domain.DirLayout
	data    map[string]any
	md      goldmark.Markdown
	layouts map[string]*template.Template
}

func newRenderer(config ports.ConfigSource, layout domain.DirLayout, data map[string]any) *renderer {
	return &renderer{
		config: config,
		layout: layout,
		data:   data,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		layouts: make(map[string]*template.Template),
	}
}

// render reads, renders, and maps one template input.
func (r *renderer) render(input string) (domain.TemplateResult, error) {
	raw, err := os.ReadFile(domain.StripLeadingDotSlash(input))
	if err != nil {
		return domain.TemplateResult{}, zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "file", input)
	}

	page := map[string]any{}
	body := raw
	if fm, rest, ok := splitFrontMatter(raw); ok {
		if err := yaml.Unmarshal(fm, &page); err != nil {
			return domain.TemplateResult{}, zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "file", input)
		}
		body = rest
	}

	engine := r.config.Extensions()[strings.ToLower(path.Ext(input))]
	content, err := r.renderBody(input, engine, body, page)
	if err != nil {
		return domain.TemplateResult{}, err
	}

	if layoutName, ok := page["layout"].(string); ok && layoutName != "" {
		content, err = r.applyLayout(input, layoutName, content, page)
		if err != nil {
			return domain.TemplateResult{}, err
		}
	}

	outputPath, url := r.mapOutput(input)
	return domain.TemplateResult{
		InputPath:  input,
		OutputPath: outputPath,
		URL:        url,
		Content:    content,
	}, nil
}

// renderBody runs the body through the engine selected by the extension map.
func (r *renderer) renderBody(input, engine string, body []byte, page map[string]any) (string, error) {
	switch engine {
	case "markdown":
		var buf bytes.Buffer
		if err := r.md.Convert(body, &buf); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "file", input)
		}
		return buf.String(), nil
	default:
		tmpl, err := template.New(path.Base(input)).Parse(string(body))
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "file", input)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, renderContext{Page: page, Data: r.data}); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "file", input)
		}
		return buf.String(), nil
	}
}

// applyLayout wraps rendered content in its layout from the includes
// directory.
func (r *renderer) applyLayout(input, name, content string, page map[string]any) (string, error) {
	if path.Ext(name) == "" {
		name += ".html"
	}
	layoutPath := path.Join(domain.StripLeadingDotSlash(r.layout.IncludesPath()), name)

	tmpl, ok := r.layouts[layoutPath]
	if !ok {
		raw, err := os.ReadFile(layoutPath)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "file", input)
		}
		tmpl, err = template.New(name).Parse(string(raw))
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "layout", layoutPath)
		}
		r.layouts[layoutPath] = tmpl
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, renderContext{
		Page:    page,
		Data:    r.data,
		Content: template.HTML(content),
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "layout", layoutPath)
	}
	return buf.String(), nil
}

// mapOutput derives the pretty-URL output path and URL for an input. Every
// page becomes a directory with an index.html, except inputs already named
// index.
func (r *renderer) mapOutput(input string) (outputPath, url string) {
	rel := domain.StripLeadingDotSlash(input)
	if root := domain.StripLeadingDotSlash(domain.NormalizePath(r.layout.Input)); root != "" {
		rel = strings.TrimPrefix(rel, root+"/")
	}

	stem := strings.TrimSuffix(rel, path.Ext(rel))
	var urlPath string
	if path.Base(stem) == "index" {
		urlPath = path.Dir(stem)
		if urlPath == "." {
			urlPath = ""
		}
	} else {
		urlPath = stem
	}

	outRel := path.Join(urlPath, "index.html")
	outputPath = domain.NormalizePath(path.Join(domain.StripLeadingDotSlash(domain.NormalizePath(r.layout.Output)), outRel))

	// URLs stay unprefixed here; the reload broadcaster is the one place
	// that rewrites them with the configured path prefix.
	url = "/" + urlPath
	if urlPath != "" {
		url += "/"
	}
	return outputPath, url
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// body.
func splitFrontMatter(raw []byte) (fm, body []byte, ok bool) {
	s := string(raw)
	if !strings.HasPrefix(s, "---\n") && !strings.HasPrefix(s, "---\r\n") {
		return nil, nil, false
	}
	rest := s[strings.Index(s, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, nil, false
	}
	after := rest[end+len("\n---"):]
	if idx := strings.Index(after, "\n"); idx >= 0 {
		after = after[idx+1:]
	} else {
		after = ""
	}
	return []byte(rest[:end]), []byte(after), true
}

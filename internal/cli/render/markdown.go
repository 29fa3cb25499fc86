package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io"
	"text/template"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/fatih/color"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var documentTemplate = template.Must(
	template.New("document").
		Funcs(template.FuncMap{
			"sourceHashPrefix":   func() string { return domain.SourceHashPrefix },
			"proxyGasLimit":      func() string { return domain.ProxyUpdateGasLimit },
			"upgradeToSignature": func() string { return domain.UpgradeToSignature },
		}).
		ParseFS(templateFS, "templates/deployment.md.tmpl", "templates/proxy_update.md.tmpl"),
)

// MarkdownRenderer renders the upgrade documentation. The deployment section is
// always emitted; the proxy update section follows it only when a proxy is set.
type MarkdownRenderer struct {
	out io.Writer
	err io.Writer
}

// NewMarkdownRenderer creates a renderer writing the document to out and banners to err
func NewMarkdownRenderer(out, err io.Writer) *MarkdownRenderer {
	return &MarkdownRenderer{out: out, err: err}
}

// Render returns the document for params
func (r *MarkdownRenderer) Render(params *domain.DerivedParameters) (string, error) {
	var buf bytes.Buffer
	for _, name := range []string{"deployment.md.tmpl", "proxy_update.md.tmpl"} {
		if err := documentTemplate.ExecuteTemplate(&buf, name, params); err != nil {
			return "", fmt.Errorf("failed to render %s: %w", name, err)
		}
	}
	return buf.String(), nil
}

// Publish renders the document and writes it between banners. Nothing is written
// when rendering fails.
func (r *MarkdownRenderer) Publish(_ context.Context, params *domain.DerivedParameters) error {
	doc, err := r.Render(params)
	if err != nil {
		return err
	}

	info := color.New(color.FgBlue)
	info.Fprintln(r.err, "\n-- Rendered Template --")
	if _, err := io.WriteString(r.out, doc); err != nil {
		return err
	}
	info.Fprintln(r.err, "\n--- End Rendered Template ---")
	return nil
}

var _ usecase.DocumentPublisher = (*MarkdownRenderer)(nil)

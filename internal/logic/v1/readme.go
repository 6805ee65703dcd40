package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"

	"github.com/breeew/gemini-ext/internal/core"
	"github.com/breeew/gemini-ext/pkg/errors"
	"github.com/breeew/gemini-ext/pkg/i18n"
)

type ReadmeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewReadmeLogic(ctx context.Context, core *core.Core) *ReadmeLogic {
	l := &ReadmeLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

type ReadmePage struct {
	Stylesheets []string
	Content     template.HTML
}

// Render turns the service README into html with the markdown api.
func (l *ReadmeLogic) Render() (*ReadmePage, error) {
	cfg := l.core.Cfg().Readme
	raw, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, errors.New("ReadmeLogic.Render.ReadFile", i18n.ERROR_README_UNAVAILABLE, err)
	}

	html, err := l.renderMarkdown(cfg.MarkdownEndpoint, string(raw))
	if err != nil {
		return nil, errors.New("ReadmeLogic.Render.renderMarkdown", i18n.ERROR_README_UNAVAILABLE, err)
	}

	return &ReadmePage{
		Stylesheets: cfg.Stylesheets,
		// output of the markdown api is trusted
		Content: template.HTML(html),
	}, nil
}

type markdownRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

func (l *ReadmeLogic) renderMarkdown(endpoint, text string) ([]byte, error) {
	body, err := json.Marshal(markdownRequest{Text: text, Mode: "gfm"})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(l.ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.core.HttpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to request markdown api: %w", err)
	}
	defer resp.Body.Close()

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("markdown api responded %d: %s", resp.StatusCode, html)
	}
	return html, nil
}

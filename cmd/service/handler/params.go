package handler

import (
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	v1 "github.com/breeew/gemini-ext/internal/logic/v1"
	"github.com/breeew/gemini-ext/pkg/image"
)

// wire names of the ask request fields
const (
	PARAM_MODE     = "mode"
	PARAM_API_KEY  = "apiKey"
	PARAM_PROMPT   = "Prompt"
	PARAM_EXAMPLES = "Questions"
	PARAM_TEXT     = "text"
	PARAM_IMAGE    = "image"
	PARAM_URL      = "url"
)

// paramReader looks a field up in the json object body when there is one,
// otherwise in the form and then the query string.
type paramReader struct {
	c    *gin.Context
	body *gjson.Result
}

func newParamReader(c *gin.Context) *paramReader {
	r := &paramReader{c: c}
	if c.ContentType() != binding.MIMEJSON {
		return r
	}

	raw, err := c.GetRawData()
	if err != nil || !gjson.ValidBytes(raw) {
		return r
	}
	if body := gjson.ParseBytes(raw); body.IsObject() {
		r.body = &body
	}
	return r
}

func (r *paramReader) Get(key string) string {
	if r.body != nil {
		return r.body.Get(gjson.Escape(key)).String()
	}
	v, _ := lo.Coalesce(r.c.PostForm(key), r.c.Query(key))
	return v
}

// File returns the content of the uploaded file named key, nil when there is none.
// One byte past MAX_IMAGE_BYTES is kept so the materializer can reject oversized uploads.
func (r *paramReader) File(key string) []byte {
	fh, err := r.c.FormFile(key)
	if err != nil {
		return nil
	}

	f, err := fh.Open()
	if err != nil {
		slog.Warn("failed to open uploaded image", slog.String("error", err.Error()))
		return nil
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, image.MAX_IMAGE_BYTES+1))
	if err != nil {
		slog.Warn("failed to read uploaded image", slog.String("error", err.Error()))
		return nil
	}
	return raw
}

func readAskParams(c *gin.Context) v1.AskParams {
	r := newParamReader(c)
	p := v1.AskParams{
		Mode:     r.Get(PARAM_MODE),
		APIKey:   r.Get(PARAM_API_KEY),
		Prompt:   r.Get(PARAM_PROMPT),
		Examples: r.Get(PARAM_EXAMPLES),
		Text:     r.Get(PARAM_TEXT),
	}

	if p.ImageBytes = r.File(PARAM_IMAGE); len(p.ImageBytes) == 0 {
		p.ImageBytes = nil
		p.ImageSource, _ = lo.Coalesce(r.Get(PARAM_IMAGE), r.Get(PARAM_URL))
	}
	return p
}

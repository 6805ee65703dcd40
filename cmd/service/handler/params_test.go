package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/gemini-ext/pkg/image"
)

func testContext(method, target, contentType, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		c.Request.Header.Set("Content-Type", contentType)
	}
	return c
}

func TestReadAskParams(t *testing.T) {
	t.Run("json scalars are stringified", func(t *testing.T) {
		c := testContext(http.MethodPost, "/", "application/json; charset=utf-8", `{"mode":"mcq","text":42,"apiKey":"k","url":"https://example.com/a.png"}`)
		p := readAskParams(c)
		assert.Equal(t, "mcq", p.Mode)
		assert.Equal(t, "42", p.Text)
		assert.Equal(t, "k", p.APIKey)
		assert.Equal(t, "https://example.com/a.png", p.ImageSource)
		assert.Nil(t, p.ImageBytes)
	})

	t.Run("image wins over url", func(t *testing.T) {
		c := testContext(http.MethodPost, "/", "application/json", `{"image":"data:image/png;base64,AA==","url":"https://example.com/a.png"}`)
		assert.Equal(t, "data:image/png;base64,AA==", readAskParams(c).ImageSource)
	})

	t.Run("non object json falls back to query", func(t *testing.T) {
		c := testContext(http.MethodPost, "/?text=hello&mode=image", "application/json", `["text"]`)
		p := readAskParams(c)
		assert.Equal(t, "hello", p.Text)
		assert.Equal(t, "image", p.Mode)
	})

	t.Run("form before query", func(t *testing.T) {
		c := testContext(http.MethodPost, "/?text=query&Prompt=p", "application/x-www-form-urlencoded", "text=form")
		p := readAskParams(c)
		assert.Equal(t, "form", p.Text)
		assert.Equal(t, "p", p.Prompt)
	})

	t.Run("empty", func(t *testing.T) {
		c := testContext(http.MethodGet, "/", "", "")
		assert.True(t, readAskParams(c).IsEmpty())
	})
}

func uploadContext(t *testing.T, size int) *gin.Context {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("mode", "image"))
	fw, err := mw.CreateFormFile("image", "captcha.png")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{0x7f}, size))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return testContext(http.MethodPost, "/", mw.FormDataContentType(), buf.String())
}

func TestReadAskParams_Upload(t *testing.T) {
	p := readAskParams(uploadContext(t, 1024))
	assert.Len(t, p.ImageBytes, 1024)
	assert.Equal(t, "", p.ImageSource)
}

func TestReadAskParams_OversizedUploadIsNotTruncated(t *testing.T) {
	p := readAskParams(uploadContext(t, image.MAX_IMAGE_BYTES+1024))

	// kept past the cap so it is rejected, never cut down to a valid looking size
	require.Greater(t, len(p.ImageBytes), image.MAX_IMAGE_BYTES)

	_, err := image.NewMaterializer(nil).Materialize(context.Background(), p.ImageSource, p.ImageBytes)
	assert.ErrorIs(t, err, image.ErrImageTooLarge)
}

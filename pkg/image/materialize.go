package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/breeew/gemini-ext/pkg/utils"
)

const (
	DEFAULT_FETCH_TIMEOUT = 10 * time.Second
	// MAX_IMAGE_BYTES caps both downloads and decoded payloads.
	MAX_IMAGE_BYTES = 20 << 20
)

var (
	ErrMalformedDataURI = errors.New("malformed data uri")
	ErrImageTooLarge    = errors.New("image exceeds size limit")
)

// Materializer turns an image source (url, data uri or raw upload) into bytes.
type Materializer struct {
	client *http.Client
}

func NewMaterializer(client *http.Client) *Materializer {
	if client == nil {
		client = &http.Client{Timeout: DEFAULT_FETCH_TIMEOUT}
	}
	return &Materializer{
		client: client,
	}
}

// Materialize returns raw unchanged when it is not empty, otherwise resolves source.
// A nil result with a nil error means no image was supplied.
func (m *Materializer) Materialize(ctx context.Context, source string, raw []byte) ([]byte, error) {
	if len(raw) > MAX_IMAGE_BYTES {
		return nil, ErrImageTooLarge
	}
	if len(raw) > 0 {
		return raw, nil
	}
	if source == "" {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if IsRemote(source) {
		data, err = m.fetch(ctx, source)
	} else {
		data, err = DecodeDataURI(source)
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

func IsRemote(source string) bool {
	return utils.HasPrefixFold(source, "http")
}

func (m *Materializer) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to build image request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Failed to fetch image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MAX_IMAGE_BYTES+1))
	if err != nil {
		return nil, fmt.Errorf("Failed to read image body: %w", err)
	}
	if len(data) > MAX_IMAGE_BYTES {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

// DecodeDataURI decodes everything after the first comma as standard base64, so both
// "data:image/png;base64,<payload>" and ",<payload>" are accepted.
func DecodeDataURI(source string) ([]byte, error) {
	_, payload, found := strings.Cut(source, ",")
	if !found {
		return nil, ErrMalformedDataURI
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MAX_IMAGE_BYTES {
		return nil, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
	}
	return data, nil
}

// EncodeDataURI is the inverse of DecodeDataURI.
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

package v1

import "context"

const (
	REQUEST_ID_CONTEXT_KEY = "request_id"
)

// InjectRequestID reads the id set by the request id middleware.
func InjectRequestID(ctx context.Context) string {
	id, _ := ctx.Value(REQUEST_ID_CONTEXT_KEY).(string)
	return id
}

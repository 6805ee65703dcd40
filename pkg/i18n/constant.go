package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL           = "error.internal"
	ERROR_INVALIDARGUMENT    = "error.invalidargument"
	ERROR_MISSING_API_KEY    = "error.missing.apikey"
	ERROR_TOO_MANY_REQUESTS  = "error.tooManyRequests"
	ERROR_README_UNAVAILABLE = "error.readme.unavailable"
)

var messages = map[string]map[string]string{
	"en": {
		ERROR_INTERNAL:           "Internal server error",
		ERROR_INVALIDARGUMENT:    "Invalid argument",
		ERROR_MISSING_API_KEY:    "Missing Gemini API key",
		ERROR_TOO_MANY_REQUESTS:  "Too many requests",
		ERROR_README_UNAVAILABLE: "Documentation is unavailable",
	},
	"zh-CN": {
		ERROR_INTERNAL:           "服务内部错误",
		ERROR_INVALIDARGUMENT:    "参数错误",
		ERROR_MISSING_API_KEY:    "缺少 Gemini API 密钥",
		ERROR_TOO_MANY_REQUESTS:  "请求过于频繁",
		ERROR_README_UNAVAILABLE: "文档暂不可用",
	},
}

package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/gemini-ext/internal/logic/v1"
	"github.com/breeew/gemini-ext/internal/response"
)

const README_TEMPLATE_NAME = "readme"

const readmeTemplate = `<html>
    <head>
        {{- range .Stylesheets }}
        <link rel="stylesheet" type="text/css" href="{{ . }}">
        {{- end }}
    </head>
    <body class="markdown-body p-4">
        <div class="container">
            {{ .Content }}
        </div>
    </body>
</html>
`

// ReadmeTemplate is the page shell around the rendered README.
func ReadmeTemplate() *template.Template {
	return template.Must(template.New(README_TEMPLATE_NAME).Parse(readmeTemplate))
}

func (s *HttpSrv) Readme(c *gin.Context) {
	page, err := v1.NewReadmeLogic(c, s.Core).Render()
	if err != nil {
		response.APIError(c, err)
		return
	}

	c.HTML(http.StatusOK, README_TEMPLATE_NAME, page)
}

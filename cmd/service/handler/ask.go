package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/breeew/gemini-ext/internal/logic/v1"
	"github.com/breeew/gemini-ext/internal/response"
)

// Ask answers the question carried by the request, or shows the service
// documentation when the request carries nothing.
func (s *HttpSrv) Ask(c *gin.Context) {
	params := readAskParams(c)
	if params.IsEmpty() {
		s.Readme(c)
		return
	}

	answer, err := v1.NewAskLogic(c, s.Core).Ask(params)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, answer)
}

package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"designfoli-web/internal/designfoli"
	"github.com/gin-gonic/gin"
)

type ProxyHandler struct {
	client *designfoli.Client
}

func NewProxyHandler(client *designfoli.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

type proxyError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Forward relays /api/proxy/{path} to the backend's /api/v1/{path} with the
// caller's Authorization header and body. The backend status and body come
// back unchanged; transport failures answer 500 {"success":false,"error":...}.
func (h *ProxyHandler) Forward(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, proxyError{Error: "failed to read request body: " + err.Error()})
		return
	}

	resp, err := h.client.Forward(c.Request.Context(), designfoli.ForwardRequest{
		Method:        c.Request.Method,
		Path:          strings.TrimPrefix(c.Param("path"), "/"),
		RawQuery:      c.Request.URL.RawQuery,
		Authorization: c.GetHeader("Authorization"),
		Body:          body,
	})
	if err != nil {
		log.Printf("Proxy error: %v", err)
		c.JSON(http.StatusInternalServerError, proxyError{Error: err.Error()})
		return
	}

	c.Data(resp.Status, "application/json", resp.Body)
}

// Package resume proxies uploads to the external resume-analysis service.
// The scoring itself lives in that service; this side only relays the
// multipart body and the response verbatim.
package resume

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	UpstreamURL string
}

func New(upstreamURL string) *Handler { return &Handler{UpstreamURL: upstreamURL} }

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
	rg.POST("/analyze", h.analyze)
}

func (h *Handler) health(c *gin.Context) {
	req, err := http.NewRequestWithContext(c.Request.Context(), "GET", h.UpstreamURL+"/health", nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
		return
	}

	cli := &http.Client{Timeout: 5 * time.Second}
	resp, err := cli.Do(req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "upstream": "down"})
		return
	}
	defer resp.Body.Close()

	status := "down"
	if resp.StatusCode < 500 {
		status = "up"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "upstream": status})
}

func (h *Handler) analyze(c *gin.Context) {
	// forward the original multipart form to the upstream /analyze
	req, err := http.NewRequestWithContext(c.Request.Context(), "POST", h.UpstreamURL+"/analyze", c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
		return
	}
	req.Header = c.Request.Header.Clone()

	cli := &http.Client{Timeout: 60 * time.Second}
	resp, err := cli.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		if len(v) > 0 {
			c.Header(k, v[0])
		}
	}
	c.Status(resp.StatusCode)
	_, _ = io.Copy(c.Writer, resp.Body)
}

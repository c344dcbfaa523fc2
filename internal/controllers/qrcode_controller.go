package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	frontendURL string
}

func NewQRCodeController(frontendURL string) *QRCodeController {
	return &QRCodeController{
		frontendURL: frontendURL,
	}
}

// GenerateQRCode handles GET /qrcode - generates a scannable link to the
// public resume page
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	if qc.frontendURL == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No public site URL configured",
		})
		return
	}

	shareURL := qc.frontendURL + "/resume"

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(shareURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}

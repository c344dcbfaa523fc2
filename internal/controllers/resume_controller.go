package controllers

import (
	"net/http"

	"portfolio-be/internal/models"
	"portfolio-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	resumeService service.ResumeService
}

func NewResumeController(resumeService service.ResumeService) *ResumeController {
	return &ResumeController{
		resumeService: resumeService,
	}
}

// GetResume handles GET /api/resume - serves the assembled resume tree
func (rc *ResumeController) GetResume(c *gin.Context) {
	tree, err := rc.resumeService.Assemble()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to load resume data",
		})
		return
	}

	c.JSON(http.StatusOK, models.ResumeResponse{
		Success: true,
		Data:    tree,
	})
}

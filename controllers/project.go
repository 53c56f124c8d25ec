package controllers

import (
	"errors"
	"net/http"

	"pifah-api/config"
	"pifah-api/models"
	"pifah-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func workflowService() *services.WorkflowService {
	return services.NewWorkflowService(config.DB)
}

// respondWorkflowError maps workflow errors onto HTTP statuses.
func respondWorkflowError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   verr.Message,
			"field":   verr.Field,
		})
	case errors.Is(err, services.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Operation failed"})
	}
}

// CreateProject submits a new investment proposal.
func CreateProject(c *gin.Context) {
	userID, _ := c.Get("userID")

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	created, err := workflowService().Submit(&project, userID.(string))
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"project": created,
	})
}

// GetProjects lists projects with optional filters. Callers without the
// view-all permission are restricted to their own submissions.
func GetProjects(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	query := config.DB.Model(&models.Project{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if country := c.Query("country"); country != "" {
		query = query.Where("country = ?", country)
	}
	if pillar := c.Query("pillar"); pillar != "" {
		query = query.Where("pifah_pillar = ?", pillar)
	}

	submittedBy := c.Query("submitted_by")
	if !services.PrivilegedRole(role.(string)) {
		// Non-privileged callers only ever see their own projects.
		submittedBy = userID.(string)
	}
	if submittedBy != "" {
		query = query.Where("submitted_by = ?", submittedBy)
	}

	var projects []models.Project
	if err := query.Order("create_at DESC").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
		"total":    len(projects),
	})
}

// GetProject returns a single project. Non-privileged callers may only
// read their own submissions.
func GetProject(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	var project models.Project
	if err := config.DB.Where("project_id = ?", c.Param("id")).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch project"})
		return
	}

	if !services.PrivilegedRole(role.(string)) && project.SubmittedBy != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// GetPublicProjects returns summaries of approved projects for
// unauthenticated map visitors.
func GetPublicProjects(c *gin.Context) {
	var projects []models.Project
	if err := config.DB.Where("status = ?", models.StatusApproved).
		Order("approved_at DESC").
		Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch projects"})
		return
	}

	summaries := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, gin.H{
			"project_id":      p.ProjectID,
			"project_title":   p.ProjectTitle,
			"project_summary": p.ProjectSummary,
			"country":         p.Country,
			"region":          p.Region,
			"pifah_pillar":    p.PifahPillar,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": summaries,
		"total":    len(summaries),
	})
}

// ReviewProject moves a pending project into review.
func ReviewProject(c *gin.Context) {
	userID, _ := c.Get("userID")

	project, err := workflowService().Review(c.Param("id"), userID.(string))
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project is now under review",
		"project": project,
	})
}

// DecideProject approves or rejects a project under review.
func DecideProject(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Field 'approved' is required"})
		return
	}

	project, err := workflowService().Decide(c.Param("id"), userID.(string), *req.Approved)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	message := "Project rejected"
	if *req.Approved {
		message = "Project approved"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"project": project,
	})
}

// UpdateProject updates project fields. For admins this is the escape
// hatch: direct overwrite with no workflow guard and no notification.
// Submitters may edit their own projects only while still pending.
func UpdateProject(c *gin.Context) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	// Identity and audit columns cannot be overwritten.
	delete(updates, "project_id")
	delete(updates, "create_at")
	delete(updates, "update_at")

	if role.(string) != models.RoleAdmin {
		var project models.Project
		if err := config.DB.Where("project_id = ?", c.Param("id")).First(&project).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Project not found"})
			return
		}
		if project.SubmittedBy != userID.(string) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
			return
		}
		if project.Status != models.StatusPending {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Projects can only be edited while pending"})
			return
		}
		// Submitters never touch workflow fields.
		for _, field := range []string{"status", "submitted_by", "reviewed_by", "reviewed_at", "approved_by", "approved_at"} {
			delete(updates, field)
		}
	}

	project, err := workflowService().AdminUpdate(c.Param("id"), updates)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// DeleteProject permanently removes a project.
func DeleteProject(c *gin.Context) {
	if err := workflowService().Delete(c.Param("id")); err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted",
	})
}

package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pifah-api/config"
	"pifah-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowService owns the project approval workflow:
// pending -> under_review -> approved|rejected. Each transition writes
// the project update and its notification in a single transaction.
type WorkflowService struct {
	db *gorm.DB
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{db: db}
}

// ValidateProject checks the fields required at submission and returns a
// field-level error for the first missing or invalid one.
func ValidateProject(p *models.Project) *ValidationError {
	required := []struct {
		field string
		value string
	}{
		{"project_title", p.ProjectTitle},
		{"project_summary", p.ProjectSummary},
		{"country", p.Country},
		{"region", p.Region},
		{"implementing_entity", p.ImplementingEntity},
		{"project_type", p.ProjectType},
		{"contact_person", p.ContactPerson},
		{"contact_details", p.ContactDetails},
		{"project_description", p.ProjectDescription},
		{"pifah_pillar", p.PifahPillar},
		{"current_stage", p.CurrentStage},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return requiredField(r.field)
		}
	}

	if !models.ValidPillar(p.PifahPillar) {
		return &ValidationError{Field: "pifah_pillar", Message: "Unknown PIFAH pillar"}
	}
	if !models.ValidRegion(p.Region) {
		return &ValidationError{Field: "region", Message: "Unknown region"}
	}
	if words := len(strings.Fields(p.ProjectSummary)); words > 50 {
		return &ValidationError{Field: "project_summary", Message: "Summary must be 50 words or fewer"}
	}
	return nil
}

// Submit creates a project in pending status and notifies the submitter.
func (s *WorkflowService) Submit(project *models.Project, submitterID string) (*models.Project, error) {
	if verr := ValidateProject(project); verr != nil {
		return nil, verr
	}

	now := time.Now()
	project.ProjectID = uuid.NewString()
	project.Status = models.StatusPending
	project.SubmittedBy = submitterID
	project.ReviewedBy = nil
	project.ReviewedAt = nil
	project.ApprovedBy = nil
	project.ApprovedAt = nil
	project.CreateAt = now
	project.UpdateAt = nil

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(project).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	notification := newWorkflowNotification(project, models.NotificationSubmission, submitterID, now)
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.sendWorkflowEmail(submitterID, notification)
	return project, nil
}

// Review moves a pending project to under_review and notifies the
// original submitter.
func (s *WorkflowService) Review(projectID, reviewerID string) (*models.Project, error) {
	return s.transition(projectID, func(project *models.Project, now time.Time) (map[string]interface{}, string, error) {
		if project.Status != models.StatusPending {
			return nil, "", ErrInvalidTransition
		}
		project.Status = models.StatusUnderReview
		project.ReviewedBy = &reviewerID
		project.ReviewedAt = &now
		project.UpdateAt = &now
		updates := map[string]interface{}{
			"status":      models.StatusUnderReview,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
			"update_at":   now,
		}
		return updates, models.NotificationReview, nil
	})
}

// Decide moves an under_review project to approved or rejected and
// notifies the original submitter.
func (s *WorkflowService) Decide(projectID, approverID string, approved bool) (*models.Project, error) {
	return s.transition(projectID, func(project *models.Project, now time.Time) (map[string]interface{}, string, error) {
		if project.Status != models.StatusUnderReview {
			return nil, "", ErrInvalidTransition
		}
		status := models.StatusRejected
		notificationType := models.NotificationRejection
		if approved {
			status = models.StatusApproved
			notificationType = models.NotificationApproval
		}
		project.Status = status
		project.ApprovedBy = &approverID
		project.ApprovedAt = &now
		project.UpdateAt = &now
		updates := map[string]interface{}{
			"status":      status,
			"approved_by": approverID,
			"approved_at": now,
			"update_at":   now,
		}
		return updates, notificationType, nil
	})
}

// transition loads the project, applies the computed update and inserts
// the paired notification in one transaction. A failed notification
// insert rolls back the status change. The apply callback mutates the
// loaded project to match its update map, so the committed state can be
// returned without a second read.
func (s *WorkflowService) transition(projectID string, apply func(*models.Project, time.Time) (map[string]interface{}, string, error)) (*models.Project, error) {
	now := time.Now()

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var project models.Project
	if err := tx.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	updates, notificationType, err := apply(&project, now)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.Project{}).
		Where("project_id = ?", project.ProjectID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	notification := newWorkflowNotification(&project, notificationType, project.SubmittedBy, now)
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.sendWorkflowEmail(project.SubmittedBy, notification)
	return &project, nil
}

// AdminUpdate overwrites project fields directly, bypassing the state
// machine. No notification is emitted.
func (s *WorkflowService) AdminUpdate(projectID string, updates map[string]interface{}) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if status, ok := updates["status"]; ok {
		str, _ := status.(string)
		if !models.ValidStatus(str) {
			return nil, &ValidationError{Field: "status", Message: "Unknown status"}
		}
	}

	updates["update_at"] = time.Now()
	if err := s.db.Model(&models.Project{}).
		Where("project_id = ?", projectID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete permanently removes a project record.
func (s *WorkflowService) Delete(projectID string) error {
	result := s.db.Where("project_id = ?", projectID).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// workflowMessages maps a notification type to its title and message
// template. The message always names the project title.
var workflowMessages = map[string]struct {
	title   string
	message string
}{
	models.NotificationSubmission: {
		title:   "Project submitted",
		message: "Your project \"%s\" has been submitted and is awaiting review.",
	},
	models.NotificationReview: {
		title:   "Project under review",
		message: "Your project \"%s\" is now under review.",
	},
	models.NotificationApproval: {
		title:   "Project approved",
		message: "Congratulations! Your project \"%s\" has been approved and is now visible on the investment map.",
	},
	models.NotificationRejection: {
		title:   "Project rejected",
		message: "Your project \"%s\" was not approved. Contact the PIFAH team for feedback.",
	},
}

func newWorkflowNotification(project *models.Project, notificationType, recipientID string, now time.Time) models.Notification {
	tmpl := workflowMessages[notificationType]
	projectID := project.ProjectID
	return models.Notification{
		NotificationID:   uuid.NewString(),
		UserID:           recipientID,
		Title:            tmpl.title,
		Message:          fmt.Sprintf(tmpl.message, project.ProjectTitle),
		Type:             notificationType,
		RelatedProjectID: &projectID,
		IsRead:           false,
		CreateAt:         now,
	}
}

// sendWorkflowEmail mails the in-app notification to the recipient.
// Delivery is best-effort after commit and never fails the request.
func (s *WorkflowService) sendWorkflowEmail(userID string, notification models.Notification) {
	var user models.User
	if err := s.db.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		return
	}

	html := fmt.Sprintf("<p>%s</p>", notification.Message)
	if err := config.SendMail([]string{user.Email}, notification.Title, html); err != nil {
		log.Printf("Warning: Failed to send workflow email to %s: %v", user.Email, err)
	}
}

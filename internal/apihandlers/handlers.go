package apihandlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"resumemash/internal/app"
	"resumemash/internal/models"
	"resumemash/internal/services"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

// --- Users ---

type createUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Role      string `json:"role" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (h *APIHandler) CreateUserHandler(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	user, err := h.App.UserService.CreateUser(c.Request.Context(), services.CreateUserParams{
		Username:  req.Username,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		log.Errorf("CreateUserHandler: %v", err)
		Internal(c, "could not create user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

// --- Resumes ---

type uploadResumeRequest struct {
	UserID   int64  `json:"user_id" binding:"required"`
	Filename string `json:"filename"`
	Text     string `json:"text" binding:"required"`
	JobField string `json:"job_field"`
}

func (h *APIHandler) UploadResumeHandler(c *gin.Context) {
	var req uploadResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	resume, existed, err := h.App.ResumeService.UploadResume(c.Request.Context(), services.UploadResumeParams{
		UserID:   req.UserID,
		Filename: req.Filename,
		Text:     req.Text,
		JobField: req.JobField,
	})
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		log.Errorf("UploadResumeHandler: %v", err)
		Internal(c, "could not store resume")
		return
	}

	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"data": gin.H{"resume": resume, "existed": existed}})
}

func (h *APIHandler) GetResumeHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "Invalid resume id")
		return
	}
	resume, err := h.App.ResumeService.GetResume(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, err.Error())
			return
		}
		log.Errorf("GetResumeHandler: %v", err)
		Internal(c, "could not load resume")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resume})
}

// --- Swipes ---

type recordSwipeRequest struct {
	RecruiterID int64 `json:"recruiter_id" binding:"required"`
	ResumeID    int64 `json:"resume_id" binding:"required"`
	// Label is 1 (mash) or 0 (pass); pointer so 0 passes binding.
	Label *int `json:"label" binding:"required"`
}

// RecordSwipeHandler persists one swipe. The response reports whether this
// swipe triggered a retrain and how many samples the trainer used.
func (h *APIHandler) RecordSwipeHandler(c *gin.Context) {
	var req recordSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	result, err := h.App.SwipeService.RecordSwipe(c.Request.Context(), req.RecruiterID, req.ResumeID, *req.Label)
	switch {
	case errors.Is(err, models.ErrAlreadySwiped):
		Conflict(c, "You already swiped on this resume")
		return
	case errors.Is(err, models.ErrValidation):
		BadRequest(c, err.Error())
		return
	case errors.Is(err, models.ErrNotFound):
		NotFound(c, err.Error())
		return
	case err != nil:
		// Retraining failed after the swipe was persisted, or the insert
		// itself failed; either way the caller needs to know.
		log.Errorf("RecordSwipeHandler: %v", err)
		Internal(c, "swipe processing failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": result})
}

func (h *APIHandler) NextResumeHandler(c *gin.Context) {
	jobField := c.Query("job_field")
	if !models.IsKnownJobField(jobField) {
		BadRequest(c, "Unknown or missing job_field")
		return
	}
	recruiterID, err := strconv.ParseInt(c.Query("recruiter_id"), 10, 64)
	if err != nil || recruiterID <= 0 {
		BadRequest(c, "Invalid recruiter_id")
		return
	}
	resume, err := h.App.SwipeService.NextResume(c.Request.Context(), jobField, recruiterID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, err.Error())
			return
		}
		log.Errorf("NextResumeHandler: %v", err)
		Internal(c, "could not pick next resume")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resume})
}

// --- Feedback ---

func (h *APIHandler) FeedbackHandler(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		BadRequest(c, "Invalid user id")
		return
	}
	feedback, err := h.App.FeedbackService.ForCandidate(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, "Upload a resume first to get feedback")
			return
		}
		log.Errorf("FeedbackHandler: %v", err)
		Internal(c, "feedback temporarily unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": feedback})
}

// --- Fields ---

func (h *APIHandler) ListFieldsHandler(c *gin.Context) {
	stats, err := h.App.FieldService.AllFieldStats(c.Request.Context())
	if err != nil {
		log.Errorf("ListFieldsHandler: %v", err)
		Internal(c, "could not load field stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// TrainFieldHandler runs a synchronous retrain for one field. samples_used
// of 0 with trained=false means the field has no class-diverse data yet.
func (h *APIHandler) TrainFieldHandler(c *gin.Context) {
	jobField := c.Param("field")
	if !models.IsKnownJobField(jobField) {
		BadRequest(c, "Unknown job field")
		return
	}
	used, err := h.App.TrainingService.Train(c.Request.Context(), jobField)
	if err != nil {
		log.Errorf("TrainFieldHandler: %v", err)
		Internal(c, "training failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"job_field":    jobField,
		"samples_used": used,
		"trained":      used > 0,
	}})
}

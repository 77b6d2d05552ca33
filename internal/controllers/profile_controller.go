package controllers

import (
	"net/http"

	"github.com/rdSoftInc/DevConnect/internal/middlewares"
	"github.com/rdSoftInc/DevConnect/internal/models"
	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
)

// ProfileController profile, experience, education and GitHub endpoints
type ProfileController struct {
	profileService services.ProfileService
	githubService  services.GithubService
}

// NewProfileController creates a ProfileController
func NewProfileController(profileService services.ProfileService, githubService services.GithubService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		githubService:  githubService,
	}
}

// ProfileRequest profile create/update body. Social links are sent flat;
// "linkden" is the legacy spelling of "linkedin".
type ProfileRequest struct {
	Company        string    `json:"company"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	Status         string    `json:"status" binding:"required"`
	GithubUsername string    `json:"githubusername"`
	Skills         skillList `json:"skills" binding:"required"`
	YouTube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Facebook       string    `json:"facebook"`
	LinkedIn       string    `json:"linkedin"`
	LinkDen        string    `json:"linkden"`
	Indeed         string    `json:"indeed"`
	Instagram      string    `json:"instagram"`
}

var profileMessages = fieldMessages{
	"status": "Status is required",
	"skills": "Skills is required",
}

// ExperienceRequest job entry body
type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required,datetime=2006-01-02"`
	To          string `json:"to" binding:"omitempty,datetime=2006-01-02"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

var experienceMessages = fieldMessages{
	"title":         "Title is required",
	"company":       "Company is required",
	"from":          "From date is required",
	"from.datetime": "From date must be YYYY-MM-DD",
	"to":            "To date must be YYYY-MM-DD",
}

// EducationRequest school entry body
type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required,datetime=2006-01-02"`
	To           string `json:"to" binding:"omitempty,datetime=2006-01-02"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

var educationMessages = fieldMessages{
	"school":        "School is required",
	"degree":        "Degree is required",
	"fieldofstudy":  "Field of study is required",
	"from":          "From date is required",
	"from.datetime": "From date must be YYYY-MM-DD",
	"to":            "To date must be YYYY-MM-DD",
}

func (r *ProfileRequest) linkedIn() string {
	if r.LinkedIn != "" {
		return r.LinkedIn
	}
	return r.LinkDen
}

// Me returns the caller's profile
func (c *ProfileController) Me(ctx *gin.Context) {
	profile, err := c.profileService.GetByUserID(ctx.Request.Context(), middlewares.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Upsert creates or updates the caller's profile
func (c *ProfileController) Upsert(ctx *gin.Context) {
	var req ProfileRequest
	if !bindJSON(ctx, &req, profileMessages) {
		return
	}

	profile, err := c.profileService.Upsert(ctx.Request.Context(), middlewares.UserID(ctx), services.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Social: models.Social{
			YouTube:   req.YouTube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			LinkedIn:  req.linkedIn(),
			Indeed:    req.Indeed,
			Instagram: req.Instagram,
		},
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// List returns every profile
func (c *ProfileController) List(ctx *gin.Context) {
	profiles, err := c.profileService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profiles)
}

// GetByUserID returns the profile owned by the :user_id path parameter
func (c *ProfileController) GetByUserID(ctx *gin.Context) {
	profile, err := c.profileService.GetByUserID(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Delete removes the caller's profile and account
func (c *ProfileController) Delete(ctx *gin.Context) {
	if err := c.profileService.DeleteAccount(ctx.Request.Context(), middlewares.UserID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, "User deleted")
}

// AddExperience adds a job to the caller's profile
func (c *ProfileController) AddExperience(ctx *gin.Context) {
	var req ExperienceRequest
	if !bindJSON(ctx, &req, experienceMessages) {
		return
	}

	profile, err := c.profileService.AddExperience(ctx.Request.Context(), middlewares.UserID(ctx), models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        parseDate(req.From),
		To:          parseOptionalDate(req.To),
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// RemoveExperience removes a job by id
func (c *ProfileController) RemoveExperience(ctx *gin.Context) {
	profile, err := c.profileService.RemoveExperience(ctx.Request.Context(), middlewares.UserID(ctx), ctx.Param("exp_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// AddEducation adds a school to the caller's profile
func (c *ProfileController) AddEducation(ctx *gin.Context) {
	var req EducationRequest
	if !bindJSON(ctx, &req, educationMessages) {
		return
	}

	profile, err := c.profileService.AddEducation(ctx.Request.Context(), middlewares.UserID(ctx), models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         parseDate(req.From),
		To:           parseOptionalDate(req.To),
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// RemoveEducation removes a school by id
func (c *ProfileController) RemoveEducation(ctx *gin.Context) {
	profile, err := c.profileService.RemoveEducation(ctx.Request.Context(), middlewares.UserID(ctx), ctx.Param("edu_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GithubRepos proxies the five oldest public repositories of :username
func (c *ProfileController) GithubRepos(ctx *gin.Context) {
	repos, err := c.githubService.Repos(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", repos)
}

package v1

import (
	"net/http"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := r.Group("/profile")
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("", handler.SaveProfile)
		profile.GET("/completion", handler.GetCompletion)
	}
}

// GetProfile godoc
// @Summary      Get own profile
// @Description  Get the profile of the currently logged-in user
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", profile)
}

// SaveProfile godoc
// @Summary      Create or update own profile
// @Description  Upsert the profile of the currently logged-in user. All fields are optional.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.UserProfile  true  "Profile fields"
// @Success      200  {object}  response.Response{data=domain.UserProfile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.profileUC.SaveProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// GetCompletion godoc
// @Summary      Profile completion
// @Description  Weighted completion percentage, status message and missing sections. Absent profiles score 0 and route to profile setup.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompletionReport}
// @Failure      401  {object}  response.Response
// @Router       /profile/completion [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetCompletion(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	report, err := h.profileUC.GetCompletion(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile completion", report)
}

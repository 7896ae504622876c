package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterProfileRoutes registers the routes for the profile of the
// logged in user with the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
	r.DELETE("", DeleteProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the logged in user
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	GetMe(c)
}

// @Summary		Update profile
// @Description	Updates the username, image or password. Only values to be updated need to be specified.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	fields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	update := models.User{Username: strings.TrimSpace(data.Username)}
	var columns []any

	if slices.Contains(fields, any("Username")) {
		columns = append(columns, "Username")
	}

	if slices.Contains(fields, any("Image")) {
		if data.Image != nil && strings.TrimSpace(*data.Image) != "" {
			image := strings.TrimSpace(*data.Image)
			update.Image = &image
		}
		columns = append(columns, "Image")
	}

	if data.NewPassword != "" {
		if data.CurrentPassword == "" {
			s := errCurrentPassword.Error()
			c.JSON(http.StatusBadRequest, UserResponse{
				Error: &s,
			})
			return
		}

		err = user.CheckPassword(data.CurrentPassword)
		if err == nil {
			err = update.SetPassword(data.NewPassword)
		}

		if err != nil {
			s := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &s,
			})
			return
		}
		columns = append(columns, "PasswordHash")
	}

	if len(columns) > 0 {
		err = models.DB.Model(&user).Select(columns[0], columns[1:]...).Updates(update).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &s,
			})
			return
		}
	}

	response := newUser(c.GetString(string(models.DBContextURL)), user)
	c.JSON(http.StatusOK, UserResponse{Data: &response})
}

// @Summary		Delete profile
// @Description	Deletes the user with all categories, transactions and savings targets
// @Tags			Profile
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			password	body		ProfileDelete	true	"Password confirmation"
// @Router			/v1/profile [delete]
func DeleteProfile(c *gin.Context) {
	var data ProfileDelete
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if data.Password == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errPasswordRequired.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, "id = ?", currentUser(c)).Error
	if err == nil {
		err = user.CheckPassword(data.Password)
	}

	if err == nil {
		err = models.DB.Delete(&user).Error
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

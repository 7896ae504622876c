package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for account creation and
// sessions with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)
	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)
	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", Logout)
	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", RequireSession, GetMe)
}

// @Summary		Register
// @Description	Creates a user with the default categories and logs them in
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	if editable.Password == "" {
		s := errPasswordRequired.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		Email:    editable.Email,
		Username: editable.Username,
	}

	err = user.SetPassword(editable.Password)
	if err == nil {
		err = models.Register(models.DB, &user)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	if !startSession(c, user) {
		return
	}

	data := newUser(c.GetString(string(models.DBContextURL)), user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Starts a session and sets the session cookie
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	UserResponse
// @Failure		400			{object}	UserResponse
// @Failure		401			{object}	UserResponse
// @Failure		500			{object}	UserResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	user, err := models.Authenticate(models.DB, editable.Email, editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	if !startSession(c, user) {
		return
	}

	data := newUser(c.GetString(string(models.DBContextURL)), user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Logout
// @Description	Ends the session and expires the session cookie
// @Tags			Auth
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/auth/logout [post]
func Logout(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err == nil && token != "" {
		err = models.EndSession(models.DB, token)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

// @Summary		Current user
// @Description	Returns the user of the session
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c.GetString(string(models.DBContextURL)), user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// startSession creates a session for the user and sets the cookie.
// It writes the error response and returns false on failure.
func startSession(c *gin.Context, user models.User) bool {
	session, err := models.NewSession(models.DB, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return false
	}

	setSessionCookie(c, session)
	return true
}

package v1

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasku/backend/internal/models"
)

// SessionCookie is the name of the cookie holding the session token.
const SessionCookie = "kasku_session"

// RequireSession resolves the session cookie to the user ID and stores it
// in the context. Requests without a valid session are aborted with 401.
func RequireSession(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
			Error: models.ErrUnauthenticated.Error(),
		})
		return
	}

	userID, err := models.SessionUser(models.DB, token)
	if err != nil {
		c.AbortWithStatusJSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Set(string(models.ContextUserID), userID)
	c.Next()
}

// currentUser is the ID of the user of the session. It must only be
// called in handlers behind RequireSession.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.ContextUserID)).(uuid.UUID)
}

func secureCookie() bool {
	return os.Getenv("SESSION_COOKIE_SECURE") == "true"
}

func setSessionCookie(c *gin.Context, session models.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, session.Token, int(models.SessionLifetime.Seconds()), "/", "", secureCookie(), true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secureCookie(), true)
}

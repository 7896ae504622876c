package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth         string `json:"auth" example:"https://example.com/api/v1/auth"`                 // URL of the authentication endpoints
	Profile      string `json:"profile" example:"https://example.com/api/v1/profile"`           // URL of the profile of the logged in user
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of Category collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
	Targets      string `json:"targets" example:"https://example.com/api/v1/targets"`           // URL of Savings Target collection endpoint
	Dashboard    string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`       // URL of the dashboard endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export"`             // URL of the spreadsheet export
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:         url + "/v1/auth",
			Profile:      url + "/v1/profile",
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			Targets:      url + "/v1/targets",
			Dashboard:    url + "/v1/dashboard",
			Export:       url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

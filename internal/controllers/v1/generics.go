package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/kasku/backend/internal/httputil"
	"github.com/kasku/backend/internal/models"
)

// ownedResource loads the resource with the ID from the URI if it belongs
// to the user of the session. Resources of other users are not found.
//
// If the resource cannot be loaded, the error response has already been
// written when ok is false.
func ownedResource[R models.Category | models.Transaction | models.SavingsTarget](c *gin.Context) (resource R, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return resource, false
	}

	err = models.DB.Scopes(models.OwnedBy(currentUser(c))).First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return resource, false
	}

	return resource, true
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Category | models.Transaction | models.SavingsTarget](c *gin.Context, _ R) {
	if _, ok := ownedResource[R](c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

package routes

import (
	"net/http"
	"strings"

	"villaweb/internal/usecase/interfaces"
	"villaweb/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// adminAuth guards the dashboard routes. The credential is taken from
// "Authorization: Bearer <token>". A nil authorizer means the admin surface
// was never configured; every request is rejected.
func adminAuth(authorizer interfaces.IAdminAuthorizer) gin.HandlerFunc {
	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Admin credentials required", http.StatusUnauthorized)

	return func(c *gin.Context) {
		if authorizer == nil {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		credential := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		ok, err := authorizer.IsAdmin(c.Request.Context(), credential)
		if err != nil {
			log.Errorf("[admin][auth] authorization check failed err=%v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !ok {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		c.Next()
	}
}

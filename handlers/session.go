package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pipetrak/utils"
)

const identityKey = "identity"

// RequireUser validates the bearer token and stores the caller identity on
// the context. Requests without a valid token stop here with 401.
func RequireUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized", "Missing Authorization header", "")
			return
		}
		token, ok := utils.BearerToken(authHeader)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized", "Authorization header missing token", "")
			return
		}

		identity, err := utils.ValidateJWT(secret, token)
		if err != nil {
			log.Printf("[auth] rejected token from %s: %v", c.ClientIP(), err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized", "Invalid or expired token", "")
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentUser returns the identity RequireUser stored.
func CurrentUser(c *gin.Context) (utils.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return utils.Identity{}, false
	}
	id, ok := v.(utils.Identity)
	return id, ok
}

func mustUser(c *gin.Context) (utils.Identity, bool) {
	id, ok := CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized", "Unauthorized", "")
	}
	return id, ok
}

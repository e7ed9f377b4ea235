package middlewares

import (
	"net/http"

	"dailydiet/utils"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

const principalKey = "principal"

// Principal is the authenticated identity resolved from a verified
// session token. Handlers must obtain it via CurrentPrincipal and never
// construct one themselves.
type Principal struct {
	ID string
}

// Authenticated resolves the principal from the token cookie before the
// handler runs. Missing cookie → 401; bad or expired token → 400 and
// the cookie is cleared.
func Authenticated(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "Unauthorized",
				"statusCode": http.StatusUnauthorized,
				"message":    "Token is missing",
			})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.SetCookie(CookieName, "", -1, "/", "", false, true)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":      "Bad Request",
				"statusCode": http.StatusBadRequest,
				"message":    "JWT token is invalid",
			})
			return
		}

		c.Set(principalKey, Principal{ID: userID})
		c.Next()
	}
}

// CurrentPrincipal returns the principal the auth guard stored for this
// request.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the public and token protected groups.
// Protected routes only run after the request's solution token has been decoded.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}

package server

import (
	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	"github.com/gin-gonic/gin"
)

const contextUserIDKey = "user_id"

// AuthRequired gates a route on a valid session cookie. The session's
// user id becomes the owner id every scoped query filters on.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, session.UserID)
		c.Request = c.Request.WithContext(ownerctx.WithOwnerID(c.Request.Context(), session.UserID))
		c.Next()
	}
}

func (s *Server) userIDFromSession(c *gin.Context) (snowflake.ID, bool) {
	value, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := value.(snowflake.ID)
	return id, ok
}

// internal/handlers/common.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/crownshop/storefront/internal/session"
	"github.com/crownshop/storefront/internal/utils"
)

// currentSession resolves the authenticated caller's session. A missing
// user id means the auth middleware did not run; both failure modes end
// the request.
func currentSession(c *gin.Context, sessions *session.Manager) (*session.Session, bool) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return nil, false
	}

	sess, err := sessions.GetOrCreate(userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to open session state")
		utils.InternalErrorResponse(c, "")
		return nil, false
	}

	return sess, true
}

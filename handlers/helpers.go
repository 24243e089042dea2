package handlers

import (
	"net/http"

	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID reads the :id path parameter as a store identifier.
// A malformed identifier is rejected with 400 before any database call;
// the caller must return immediately when ok is false.
func ParseObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.Param("id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid identifier", raw)
		return primitive.NilObjectID, false
	}
	return id, true
}

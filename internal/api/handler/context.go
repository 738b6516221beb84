package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/core/domain"
)

// messageResponse is the fixed error envelope. Success bodies are entity
// reply shapes; every failure is {"message": "<code>"}.
type messageResponse struct {
	Message string `json:"message"`
}

// actingUserID extracts the user identity injected by the bearer-token
// gate. A missing or malformed identity means the gate did not run or the
// token subject is not an ObjectID; both are authentication failures.
func actingUserID(c echo.Context) (primitive.ObjectID, error) {
	hex, _ := c.Get("userID").(string)
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
	}
	return id, nil
}

// badRequest renders a business or validation failure with its catalog code.
func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
}

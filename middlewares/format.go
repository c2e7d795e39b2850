package middlewares

import (
	"CareLink/utils"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// RespondError classifies err and writes the matching error response.
// Validation failures carry field-level details when available; integrity
// violations are rendered like validation failures rather than a raw 500.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := utils.AsAppError(err); ok {
		status := statusForKind(appErr.Kind)
		body := gin.H{"error": appErr.Message}
		if details := validationDetails(appErr.Details); details != nil {
			body["details"] = details
		}
		c.JSON(status, body)
		return
	}

	log.Printf("HTTP 500 - unexpected error: %v", err)
	utils.CaptureError(err, map[string]interface{}{
		"endpoint": c.Request.URL.Path,
		"method":   c.Request.Method,
	})
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}

func statusForKind(kind utils.ErrorKind) int {
	switch kind {
	case utils.KindValidation, utils.KindIntegrity:
		return http.StatusBadRequest
	case utils.KindPermission:
		return http.StatusForbidden
	case utils.KindNotFound:
		return http.StatusNotFound
	case utils.KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// validationDetails turns an ozzo validation.Errors into a field→message
// map; any other detail error becomes a plain string.
func validationDetails(err error) interface{} {
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validation.Errors); ok {
		details := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			details[field] = ferr.Error()
		}
		return details
	}
	return err.Error()
}

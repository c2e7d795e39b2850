package handlers

import (
	"CareLink/middlewares"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MappingHandler struct {
	service services.MappingService
}

func NewMappingHandler(service services.MappingService) *MappingHandler {
	return &MappingHandler{service: service}
}

// AssignDoctor links a doctor to one of the caller's patients.
func (h *MappingHandler) AssignDoctor(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Patient uint   `json:"patient"`
		Doctor  uint   `json:"doctor"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	mapping, err := h.service.Assign(c.Request.Context(), accountID, input.Patient, input.Doctor, input.Notes)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Doctor assigned to patient successfully",
		"mapping": mapping,
	})
}

// ListMappings returns the caller's active assignments, most recent first.
func (h *MappingHandler) ListMappings(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mappings, err := h.service.ListMine(c.Request.Context(), accountID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mappings": mappings})
}

// GetPatientDoctors returns the active assignments for one of the caller's
// patients, with a compact patient summary.
func (h *MappingHandler) GetPatientDoctors(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	patientID, err := parseUintParam(c, "patient_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	patient, mappings, err := h.service.ListForPatient(c.Request.Context(), accountID, patientID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patient":          patient,
		"assigned_doctors": mappings,
	})
}

// RemoveMapping deactivates an assignment. The row is kept; only the
// active flag flips, and the response carries no mapping payload.
func (h *MappingHandler) RemoveMapping(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mappingID, err := parseUintParam(c, "mapping_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mapping ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), accountID, mappingID); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Doctor removed from patient successfully"})
}

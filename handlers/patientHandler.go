package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service services.PatientService
}

func NewPatientHandler(service services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// ListPatients returns the caller's own patients, newest first.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	patients, err := h.service.List(c.Request.Context(), accountID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.Create(c.Request.Context(), accountID, &patient); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Patient created successfully",
		"patient": patient,
	})
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
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

	patient, err := h.service.Get(c.Request.Context(), accountID, patientID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// UpdatePatient handles PUT: a full replacement of the mutable fields.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	h.update(c, false)
}

// PatchPatient handles PATCH: absent fields keep their stored values.
func (h *PatientHandler) PatchPatient(c *gin.Context) {
	h.update(c, true)
}

func (h *PatientHandler) update(c *gin.Context, partial bool) {
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

	var patient models.Patient
	if partial {
		// Bind over the stored row so omitted keys keep their values.
		existing, err := h.service.Get(c.Request.Context(), accountID, patientID)
		if err != nil {
			middlewares.RespondError(c, err)
			return
		}
		patient = *existing
	}
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	patient.ID = patientID

	if err := h.service.Update(c.Request.Context(), accountID, &patient); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Patient updated successfully",
		"patient": patient,
	})
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
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

	if err := h.service.Delete(c.Request.Context(), accountID, patientID); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

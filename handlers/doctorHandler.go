package handlers

import (
	"CareLink/middlewares"
	"CareLink/models"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service services.DoctorService
}

func NewDoctorHandler(service services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// ListDoctors returns every doctor in the system regardless of creator;
// the pool is shared across accounts.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.Create(c.Request.Context(), accountID, &doctor); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Doctor created successfully",
		"doctor":  doctor,
	})
}

func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	doctorID, err := parseUintParam(c, "doctor_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	doctor, err := h.service.Get(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// UpdateDoctor handles PUT: a full replacement of the mutable fields.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	h.update(c, false)
}

// PatchDoctor handles PATCH: absent fields keep their stored values.
func (h *DoctorHandler) PatchDoctor(c *gin.Context) {
	h.update(c, true)
}

func (h *DoctorHandler) update(c *gin.Context, partial bool) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doctorID, err := parseUintParam(c, "doctor_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	var doctor models.Doctor
	if partial {
		existing, err := h.service.Get(c.Request.Context(), doctorID)
		if err != nil {
			middlewares.RespondError(c, err)
			return
		}
		doctor = *existing
	}
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	doctor.ID = doctorID

	if err := h.service.Update(c.Request.Context(), accountID, &doctor); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Doctor updated successfully",
		"doctor":  doctor,
	})
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	accountID, err := middlewares.ExtractAccountIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doctorID, err := parseUintParam(c, "doctor_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), accountID, doctorID); err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

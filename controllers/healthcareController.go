package controllers

import (
	"CareLink/handlers"
	"CareLink/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupHealthcareRoutes registers the patient, doctor and mapping routes.
// Everything here requires an authenticated account.
func SetupHealthcareRoutes(
	router *gin.Engine,
	patientHandler *handlers.PatientHandler,
	doctorHandler *handlers.DoctorHandler,
	mappingHandler *handlers.MappingHandler,
) {
	api := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		// Patients: private to the creating account.
		api.GET("/patients", patientHandler.ListPatients)
		api.POST("/patients", patientHandler.CreatePatient)
		api.GET("/patients/:patient_id", patientHandler.GetPatient)
		api.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
		api.PATCH("/patients/:patient_id", patientHandler.PatchPatient)
		api.DELETE("/patients/:patient_id", patientHandler.DeletePatient)

		// Doctors: shared pool, creator-only mutation.
		api.GET("/doctors", doctorHandler.ListDoctors)
		api.POST("/doctors", doctorHandler.CreateDoctor)
		api.GET("/doctors/:doctor_id", doctorHandler.GetDoctor)
		api.PUT("/doctors/:doctor_id", doctorHandler.UpdateDoctor)
		api.PATCH("/doctors/:doctor_id", doctorHandler.PatchDoctor)
		api.DELETE("/doctors/:doctor_id", doctorHandler.DeleteDoctor)

		// Mappings: assignment ledger.
		api.POST("/mappings", mappingHandler.AssignDoctor)
		api.GET("/mappings/list", mappingHandler.ListMappings)
		api.GET("/mappings/:patient_id", mappingHandler.GetPatientDoctors)
		api.DELETE("/mappings/remove/:mapping_id", mappingHandler.RemoveMapping)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emreo/scholaris/internal/app/controllers"
	"github.com/emreo/scholaris/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	offeringController *controllers.OfferingController,
	enrollmentController *controllers.EnrollmentController,
	gradeController *controllers.GradeController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Offering lifecycle
	offerings := v1.Group("/offerings")
	{
		offerings.POST("", offeringController.CreateOffering)
		offerings.GET("", offeringController.ListOfferings)
		offerings.GET("/:id", offeringController.GetOffering)
		offerings.PUT("/:id", offeringController.UpdateOffering)
		offerings.DELETE("/:id", offeringController.DeleteOffering)
		offerings.POST("/:id/retire", offeringController.RetireOffering)

		// Enrollment within an offering
		offerings.POST("/:id/students", enrollmentController.EnrollStudents)
		offerings.DELETE("/:id/students", enrollmentController.UnenrollStudents)
		offerings.GET("/:id/addable-students", enrollmentController.GetAddableStudents)

		// Grade ledger of an offering
		offerings.GET("/:id/ledger", gradeController.GetLedger)
		offerings.PUT("/:id/scores", gradeController.UpdateScores)
		offerings.POST("/:id/scores/import", gradeController.ImportScores)
		offerings.GET("/:id/scores/template", gradeController.DownloadTemplate)
	}

	// Stateless remark derivation
	grades := v1.Group("/grades")
	{
		grades.POST("/preview", gradeController.PreviewRemark)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus/internal/app/controllers"
	"github.com/yigit/campus/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	departmentController *controllers.DepartmentController,
) {
	students := router.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		// Literal segments must be registered before the :student_id routes
		students.GET("/canada", studentController.GetCanadianStudents)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/:student_id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:student_id", studentController.UpdateStudent)
		students.DELETE("/:student_id", studentController.DeleteStudent)
	}

	router.GET("/departments", departmentController.GetAllDepartments)

	// Liveness check, outside the student/department API
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/services"
	"github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetCanadianStudents retrieves the Canadian students aged 28
// @Summary Get Canadian students
// @Description Fixed filter: country Canada and age 28
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /students/canada [get]
func (c *StudentController) GetCanadianStudents(ctx *gin.Context) {
	students, err := c.studentService.GetCanadianStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// SearchStudents filters students by the present query parameters
// @Summary Search students
// @Description Exact-match filter on country and age; a repeated parameter matches any of its values. Each student includes its department
// @Tags students
// @Produce json
// @Param country query []string false "Country" collectionFormat(multi)
// @Param age query []int false "Age" collectionFormat(multi)
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	query := dto.StudentSearchQuery{
		Country: ctx.QueryArray("country"),
		Age:     ctx.QueryArray("age"),
	}

	students, err := c.studentService.SearchStudents(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} models.Student "Student retrieved successfully"
// @Failure 404 {string} string "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /students/{student_id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	pk := helpers.LookupKey(ctx.Param("student_id"))

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), pk)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Missing required attributes are reported as a 500 ValidationError
// @Tags students
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body models.StudentAttributes true "Student attributes"
// @Success 200 {object} models.Student "Student created successfully"
// @Failure 500 {object} dto.ErrorResponse "Validation or database error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var attrs models.StudentAttributes
	if err := bindAttributes(ctx, &attrs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), attrs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent overwrites an existing student
// @Summary Replace a student
// @Description Overwrites name, age and country. dept_id is not changed.
// @Tags students
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param student_id path int true "Student ID"
// @Param request body models.StudentUpdate true "Student attributes"
// @Success 200 {object} models.Student "Student updated successfully"
// @Failure 404 {string} string "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Validation or database error"
// @Router /students/{student_id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	pk := helpers.LookupKey(ctx.Param("student_id"))

	var attrs models.StudentUpdate
	if err := bindAttributes(ctx, &attrs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.ReplaceStudent(ctx.Request.Context(), pk, attrs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} models.Student "Removed student"
// @Failure 404 {string} string "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Database error"
// @Router /students/{student_id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	pk := helpers.LookupKey(ctx.Param("student_id"))

	student, err := c.studentService.DeleteStudent(ctx.Request.Context(), pk)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

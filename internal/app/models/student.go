package models

// Student represents a row of the student table
type Student struct {
	ID      int64   `json:"id" gorm:"primaryKey;autoIncrement" example:"1"`
	Name    string  `json:"name" gorm:"not null" example:"Emma"`
	Age     int     `json:"age" gorm:"not null" example:"28"`
	Country *string `json:"country" example:"Canada"`
	DeptID  int64   `json:"dept_id" gorm:"column:dept_id;not null" example:"1"`

	// Department is only populated when explicitly requested through the
	// repository lookup; writes always omit it.
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DeptID;references:ID"`
}

// TableName keeps the singular table name used by the schema
func (Student) TableName() string {
	return "student"
}

// StudentAttributes carries the attributes of a new student. Pointer fields
// distinguish a missing attribute from a zero value.
type StudentAttributes struct {
	Name    *string  `json:"name" form:"name" validate:"required"`
	Age     *Integer `json:"age" form:"age" validate:"required" swaggertype:"integer"`
	Country *string  `json:"country" form:"country"`
	DeptID  *Integer `json:"dept_id" form:"dept_id" validate:"required" swaggertype:"integer"`
}

// StudentUpdate carries the attributes reassigned by a full update.
// Department is accepted for compatibility with existing clients; it is not a
// column, so assigning it has no effect and dept_id is left untouched.
type StudentUpdate struct {
	Name       *string     `json:"name" form:"name" validate:"required"`
	Age        *Integer    `json:"age" form:"age" validate:"required" swaggertype:"integer"`
	Country    *string     `json:"country" form:"country"`
	Department interface{} `json:"department" form:"-" swaggertype:"object"`
}

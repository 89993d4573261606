package models

// Department represents a row of the department table
type Department struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement" example:"1"`
	Title string `json:"title" gorm:"not null" example:"Computer Engineering"`

	// Students is the has-many side of student.dept_id. It is never serialized
	// and never loaded implicitly.
	Students []Student `json:"-" gorm:"foreignKey:DeptID;references:ID"`
}

// TableName keeps the singular table name used by the schema
func (Department) TableName() string {
	return "department"
}

// DepartmentAttributes carries the writable department columns.
type DepartmentAttributes struct {
	Title *string `json:"title" form:"title" validate:"required"`
}

package services

// Services defined in this package:
// - StudentService: listing, filtering and the read-then-write flows for students
// - DepartmentService: listing departments

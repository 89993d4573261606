package dto

// StudentSearchQuery holds the optional filters of /students/search. A
// parameter given once is an equality match; repeating it matches any of the
// values. An empty slice means the parameter was absent.
type StudentSearchQuery struct {
	Country []string
	Age     []string
}

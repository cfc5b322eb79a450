package dto

// Category is a category as it appears on the wire.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCategoryRequest is the body of POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

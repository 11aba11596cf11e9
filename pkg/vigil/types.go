package vigil

// Result is the uniform envelope returned by every Vigil operation.
// Exactly one variant is populated: a success carries Data (and, for
// page-oriented operations, Pagination); a failure carries Error and
// never carries Pagination.
type Result struct {
	Success    bool         `json:"success"              yaml:"success"`
	Data       any          `json:"data,omitempty"       yaml:"data,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"      yaml:"error,omitempty"`
}

// ErrorDetail describes a failed operation. StatusCode is set only for
// HTTP-origin failures; transport failures that never produced a response
// leave it zero.
type ErrorDetail struct {
	Code       ErrorKind `json:"code"                 yaml:"code"`
	Message    string    `json:"message"              yaml:"message"`
	StatusCode int       `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
}

// Pagination is the normalized cursor metadata shared by both wire forms
// the platform uses. HasMore holds iff Page < TotalPages, and NextPage is
// Page+1 exactly when HasMore.
type Pagination struct {
	Page       int  `json:"page"       yaml:"page"`
	PageSize   int  `json:"pageSize"   yaml:"pageSize"`
	TotalItems int  `json:"totalItems" yaml:"totalItems"`
	TotalPages int  `json:"totalPages" yaml:"totalPages"`
	HasMore    bool `json:"hasMore"    yaml:"hasMore"`
	NextPage   *int `json:"nextPage"   yaml:"nextPage"`
}

// NewSuccess builds a success envelope around an opaque payload.
func NewSuccess(data any) *Result {
	return &Result{Success: true, Data: data}
}

// NewSuccessWithPagination builds a success envelope for a page-oriented
// operation.
func NewSuccessWithPagination(data any, pagination *Pagination) *Result {
	return &Result{Success: true, Data: data, Pagination: pagination}
}

// NewFailure builds a failure envelope with no HTTP status, for failures
// that never produced a response.
func NewFailure(kind ErrorKind, message string) *Result {
	return &Result{Success: false, Error: &ErrorDetail{Code: kind, Message: message}}
}

// NewHTTPFailure builds a failure envelope from an HTTP status code,
// classifying the status into an error kind.
func NewHTTPFailure(statusCode int, message string) *Result {
	return &Result{
		Success: false,
		Error: &ErrorDetail{
			Code:       KindForStatus(statusCode),
			Message:    message,
			StatusCode: statusCode,
		},
	}
}

// newPagination normalizes raw page metadata into a Pagination value,
// deriving HasMore and NextPage.
func newPagination(page, pageSize, totalItems, totalPages int) *Pagination {
	pagination := &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}

	if pagination.HasMore {
		next := page + 1
		pagination.NextPage = &next
	}

	return pagination
}

package apimodels

// ErrorResponse - тело ошибки, единый формат для 404 и 500
type ErrorResponse struct {
	Message string `json:"message"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Message: message,
	}
}

// ListResponse - конверт постраничного списка,
// TotalCount - общее кол-во записей после фильтра, без учёта страницы
type ListResponse struct {
	Data       interface{} `json:"data"`
	TotalCount int         `json:"totalCount"`
}

func NewListResponse(data interface{}, totalCount int) ListResponse {
	return ListResponse{
		Data:       data,
		TotalCount: totalCount,
	}
}

type Pagination struct {
	Page     int `json:"page" query:"page"`         // страница (1,2,3..)
	PageSize int `json:"pageSize" query:"pageSize"` // записей на странице
}

func (r Pagination) GetPage() (page, pageSize int) {
	page = 1
	pageSize = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.PageSize > 0 {
		pageSize = r.PageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

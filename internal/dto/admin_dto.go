package dto

// ListApplicationsQuery binds the privileged listing's query parameters.
type ListApplicationsQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=Pending TestSent Approved Rejected"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type ApplicationListResponse struct {
	Data     []ApplicationResponse `json:"data"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

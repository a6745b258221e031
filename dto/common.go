package dto

// DateRange is the optional [start, end] window most listings accept.
type DateRange struct {
	StartDate string `form:"start_date" json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// Normalize fills in the defaults used when the caller omits paging.
func (p *PageQuery) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
}

func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

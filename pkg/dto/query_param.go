package dto

type Filter struct {
	PageSize   int `query:"page_size"`
	PageNumber int `query:"page_number"`
}

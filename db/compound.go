package db

// ListOptions is used for page-wise listing
type ListOptions struct {
	PageSize int
	Page     int
}

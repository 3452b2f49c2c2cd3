package types

type ErrorMessage struct {
	Message string `json:"message"`
}

// Pagination 未传入的参数为 nil
type Pagination struct {
	Page  *uint
	Limit *uint
}

package misc

type PagedBody struct {
	List  interface{} `json:"list"`
	Total uint64      `json:"total"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

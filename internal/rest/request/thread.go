package request

type Thread struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type Comment struct {
	Content string `json:"content" binding:"required"`
}

type Reply struct {
	Content string `json:"content" binding:"required"`
}

package handler

type createPostRequest struct {
	Title    string `json:"title"    validate:"required,max=100"`
	Content  string `json:"content"  validate:"required,max=5000"`
	AuthorID string `json:"authorId" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type createReplyRequest struct {
	Content  string `json:"content"  validate:"required,max=1000"`
	AuthorID string `json:"authorId" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type replyResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	AuthorID  string `json:"authorId"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

type postResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	AuthorID  string          `json:"authorId"`
	Username  string          `json:"username"`
	CreatedAt string          `json:"createdAt"`
	Replies   []replyResponse `json:"replies"`
}

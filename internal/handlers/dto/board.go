package dto

// PostRequest covers both query and finding-buddy posts.
type PostRequest struct {
	Email   string `json:"email"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type PostCommentRequest struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
}

// AddInterestedUserRequest mirrors the client payload: the post is addressed
// by its author's email.
type AddInterestedUserRequest struct {
	QueryEmail string `json:"queryEmail"`
	UserData   struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"userData"`
}

type AddTrekRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImgSrc      string `json:"imgSrc"`
	Email       string `json:"email"`
}

// VoteRequest carries the voting user's id.
type VoteRequest struct {
	ID string `json:"id"`
}

type AddShortRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImgSrc      string `json:"imgSrc"`
}

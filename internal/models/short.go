package models

// Short is a blog-style snippet kept in a flat JSON file, outside the
// document store.
type Short struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImgSrc      string `json:"imgSrc"`
}

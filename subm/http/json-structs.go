package http

type SubmView struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	SocialHandle string   `json:"socialHandle"`
	Images       []string `json:"images"`
	CreatedAt    string   `json:"createdAt"`
}

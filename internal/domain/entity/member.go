package entity

type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

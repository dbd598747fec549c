package model

type Category string

const (
	CategoryMen   Category = "men"
	CategoryWomen Category = "women"
)

type User struct {
	ID       string
	Username string
	Password string
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Thumbnail   *string  `json:"thumbnail"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
}

// Clone returns a copy that shares no memory with p.
func (p Product) Clone() Product {
	c := p
	if p.Thumbnail != nil {
		t := *p.Thumbnail
		c.Thumbnail = &t
	}
	c.Sizes = append([]string(nil), p.Sizes...)
	return c
}

package dto

type CreateBannerRequest struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	Link      string `json:"link"      validate:"max=500"`
	AltText   string `json:"alt_text"  validate:"max=255"`
	SortOrder int    `json:"order"`
	Enabled   *bool  `json:"enabled"`
}

type UpdateBannerRequest struct {
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	Link      *string `json:"link"      validate:"omitempty,max=500"`
	AltText   *string `json:"alt_text"  validate:"omitempty,max=255"`
	SortOrder *int    `json:"order"`
	Enabled   *bool   `json:"enabled"`
}

type BannerResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	Link      string `json:"link"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"order"`
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateMarqueeRequest struct {
	Text    string `json:"text"  validate:"required"`
	Link    string `json:"link"  validate:"max=500"`
	Speed   int    `json:"speed" validate:"omitempty,min=1"`
	Enabled *bool  `json:"enabled"`
}

type UpdateMarqueeRequest struct {
	Text    *string `json:"text"`
	Link    *string `json:"link"  validate:"omitempty,max=500"`
	Speed   *int    `json:"speed" validate:"omitempty,min=1"`
	Enabled *bool   `json:"enabled"`
}

type MarqueeResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Link      string `json:"link"`
	Speed     int    `json:"speed"`
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

package dto

type CreateAssetRequest struct {
	Name        string   `json:"name"         validate:"required,max=255"`
	Type        string   `json:"type"         validate:"required,oneof=image video"`
	StoragePath string   `json:"storage_path" validate:"required"`
	URL         string   `json:"url"          validate:"required,url"`
	SizeBytes   int64    `json:"size_bytes"   validate:"min=0"`
	MimeType    string   `json:"mime_type"    validate:"max=100"`
	UsedIn      []string `json:"used_in"`
}

type UpdateAssetRequest struct {
	Name     *string `json:"name"      validate:"omitempty,max=255"`
	URL      *string `json:"url"       validate:"omitempty,url"`
	MimeType *string `json:"mime_type" validate:"omitempty,max=100"`
}

type UpdateAssetUsageRequest struct {
	UsedIn []string `json:"used_in" validate:"required"`
}

type AssetResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	StoragePath string   `json:"storage_path"`
	URL         string   `json:"url"`
	SizeBytes   int64    `json:"size_bytes"`
	MimeType    string   `json:"mime_type"`
	UsedIn      []string `json:"used_in"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type AssetListResponse struct {
	Data       []AssetResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type AssetFilter struct {
	Type  string `form:"type" validate:"omitempty,oneof=image video"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type AssetStatsResponse struct {
	TotalAssets    int64 `json:"total_assets"`
	TotalSizeBytes int64 `json:"total_size_bytes"`
	ImageCount     int64 `json:"image_count"`
	VideoCount     int64 `json:"video_count"`
}

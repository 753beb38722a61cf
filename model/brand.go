package model

type BrandEntity struct {
	ID        uint64 `db:"id" json:"-"`
	BrandID   string `db:"brand_id" json:"brandId"`
	BrandName string `db:"brand_name" json:"brandName"`
}

type CreateBrandRequest struct {
	BrandName string `json:"brandName" validate:"required"`
}

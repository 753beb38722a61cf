package model

type CategoryEntity struct {
	ID         uint64 `db:"id" json:"-"`
	CategoryID string `db:"category_id" json:"categoryId"`
	Name       string `db:"name" json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateCategoryResponse struct {
	Message  string          `json:"message"`
	Category *CategoryEntity `json:"category"`
}

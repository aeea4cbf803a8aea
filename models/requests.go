package models

type CreateWorldRequest struct {
	WorldsFolderPath string `json:"worldsFolderPath"`
	NewWorldName     string `json:"newWorldName"`
}

type WorldAccessRequest struct {
	WorldFolderPath string `json:"worldFolderPath"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	Description *string `json:"description"`
}

type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

type CreateArticleRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	CategoryID int64  `json:"categoryId" validate:"required,gt=0"`
}

type CreateFieldRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type UpdateFieldValueRequest struct {
	Value string `json:"value"`
}

// CreateConnectionRequest carries either the text of a new ConnectionDescription
// or the ID of an existing one, never both.
type CreateConnectionRequest struct {
	MainArticleID           int64   `json:"mainArticleId" validate:"required,gt=0"`
	OtherArticleID          int64   `json:"otherArticleId" validate:"required,gt=0"`
	OtherArticleRole        string  `json:"otherArticleRole" validate:"max=255"`
	Description             *string `json:"description"`
	ConnectionDescriptionID *int64  `json:"connectionDescriptionId" validate:"omitempty,gt=0"`
}

type UpdateConnectionRoleRequest struct {
	OtherArticleRole string `json:"otherArticleRole" validate:"max=255"`
}

type UpdateConnectionDescriptionRequest struct {
	Content string `json:"content"`
}

type CreateSnippetRequest struct {
	Name      string `json:"name" validate:"required,notblank,max=255"`
	Content   string `json:"content"`
	ArticleID int64  `json:"articleId" validate:"required,gt=0"`
}

type UpdateSnippetRequest struct {
	Name    *string `json:"name" validate:"omitempty,notblank,max=255"`
	Content *string `json:"content"`
}

// ImageUpload describes an uploaded file before it reaches the Image Store.
type ImageUpload struct {
	MimeType string `json:"mimetype" validate:"required,imagemime"`
	Size     int    `json:"size" validate:"gt=0"`
}

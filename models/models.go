package models

import "time"

type Category struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Image       *ImageDescriptor `json:"image"`
	Icon        *string          `json:"icon"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// CategoryMetadata is the single-Category projection without image and icon.
type CategoryMetadata struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Field struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CategoryID int64     `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Article struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	CategoryID int64            `json:"categoryId"`
	Image      *ImageDescriptor `json:"image"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ArticleMetadata joins an Article with the name of its Category.
type ArticleMetadata struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type FieldValue struct {
	ID        int64     `json:"id"`
	Value     string    `json:"value"`
	FieldID   int64     `json:"fieldId"`
	ArticleID int64     `json:"articleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleFieldValue is a FieldValue as seen from its Article, labelled with the Field name.
type ArticleFieldValue struct {
	FieldID   int64  `json:"fieldId"`
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

type Connection struct {
	ID                      int64     `json:"id"`
	MainArticleID           int64     `json:"mainArticleId"`
	OtherArticleID          int64     `json:"otherArticleId"`
	OtherArticleRole        string    `json:"otherArticleRole"`
	ConnectionDescriptionID int64     `json:"connectionDescriptionId"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// ConnectionSummary is a Connection seen from its main Article.
type ConnectionSummary struct {
	ID                      int64  `json:"id"`
	MainArticleID           int64  `json:"mainArticleId"`
	OtherArticleID          int64  `json:"otherArticleId"`
	OtherArticleName        string `json:"otherArticleName"`
	OtherArticleRole        string `json:"otherArticleRole"`
	ConnectionDescriptionID int64  `json:"connectionDescriptionId"`
	Description             string `json:"description"`
}

type ConnectionDescription struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Snippet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	ArticleID int64     `json:"articleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

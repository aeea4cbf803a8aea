package database

import (
	"context"

	"world-scribe/models"
)

// DefaultCategory is one entry of the taxonomy every new World starts with.
type DefaultCategory struct {
	Name   string
	Fields []string
}

// DefaultCategories is the fixed taxonomy seeded into new Worlds.
var DefaultCategories = []DefaultCategory{
	{Name: "Person", Fields: []string{"Nicknames / Aliases", "Age", "Gender", "Short Bio"}},
	{Name: "Group", Fields: []string{"Mandate / Description", "History"}},
	{Name: "Place", Fields: []string{"Description", "History"}},
	{Name: "Item", Fields: []string{"Properties / Description", "History"}},
	{Name: "Concept", Fields: []string{"Description"}},
}

// SeedDefaultCategories inserts DefaultCategories and their Fields in one transaction.
func (r *Repository) SeedDefaultCategories(ctx context.Context) error {
	return r.WithTx(ctx, func(tx *Repository) error {
		for _, def := range DefaultCategories {
			description := ""
			category := &models.Category{Name: def.Name, Description: &description}
			if err := tx.CreateCategory(ctx, category); err != nil {
				return err
			}

			for _, fieldName := range def.Fields {
				field := &models.Field{Name: fieldName, CategoryID: category.ID}
				if err := tx.CreateField(ctx, field); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

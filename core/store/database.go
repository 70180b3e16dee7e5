package store

import (
	"context"
	"fmt"
	"time"

	"tataru/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRow is the items table layout.
type ItemRow struct {
	ID          int           `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name        string        `gorm:"column:name;size:255;index"`
	Emoji       string        `gorm:"column:emoji;size:64"`
	Category    string        `gorm:"column:category;size:128"`
	IconURL     string        `gorm:"column:icon_url;size:512"`
	Price       *models.Price `gorm:"column:price;type:text;serializer:json"`
	RecipeID    int           `gorm:"column:recipe_id"`
	CraftType   string        `gorm:"column:craft_type;size:64"`
	RecipeYield int           `gorm:"column:recipe_yield"`
	HasRecipe   bool          `gorm:"column:has_recipe"`
	Hydrated    bool          `gorm:"column:hydrated"`
	UpdatedAt   time.Time     `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (ItemRow) TableName() string { return "items" }

// IngredientRow is one recipe slot in the recipe_ingredients table.
type IngredientRow struct {
	ItemID       int `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Slot         int `gorm:"column:slot;primaryKey;autoIncrement:false"`
	IngredientID int `gorm:"column:ingredient_id;index"`
	Quantity     int `gorm:"column:quantity"`
}

func (IngredientRow) TableName() string { return "recipe_ingredients" }

// RequiredColumns lists the columns the database backend reads and writes, per table.
var RequiredColumns = map[string][]string{
	"items": {
		"id", "name", "emoji", "category", "icon_url", "price",
		"recipe_id", "craft_type", "recipe_yield", "has_recipe", "hydrated", "updated_at",
	},
	"recipe_ingredients": {"item_id", "slot", "ingredient_id", "quantity"},
}

// DatabaseBackend persists items to a relational database through gorm.
type DatabaseBackend struct {
	db *gorm.DB
}

// NewDatabaseBackend wraps db and migrates the cache tables.
func NewDatabaseBackend(db *gorm.DB) (*DatabaseBackend, error) {
	b := &DatabaseBackend{db: db}
	if err := b.Migrate(context.Background()); err != nil {
		return nil, err
	}
	return b, nil
}

// Migrate creates missing cache tables and columns.
func (b *DatabaseBackend) Migrate(ctx context.Context) error {
	if err := b.db.WithContext(ctx).AutoMigrate(&ItemRow{}, &IngredientRow{}); err != nil {
		return fmt.Errorf("failed to migrate item tables: %w", err)
	}
	return nil
}

// DB exposes the underlying connection for schema inspection.
func (b *DatabaseBackend) DB() *gorm.DB { return b.db }

func (b *DatabaseBackend) Name() string { return BackendDatabase }

func (b *DatabaseBackend) Load(ctx context.Context) ([]models.Item, error) {
	var rows []ItemRow
	if err := b.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	var ingredients []IngredientRow
	if err := b.db.WithContext(ctx).Order("item_id, slot").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipe ingredients: %w", err)
	}

	byItem := make(map[int][]models.Ingredient)
	for _, in := range ingredients {
		byItem[in.ItemID] = append(byItem[in.ItemID], models.Ingredient{ItemID: in.IngredientID, Quantity: in.Quantity})
	}

	items := make([]models.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toItem(byItem[r.ID]))
	}
	return items, nil
}

func (b *DatabaseBackend) Persist(ctx context.Context, item models.Item, _ func() []models.Item) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return writeItem(tx, item)
	})
}

func (b *DatabaseBackend) Sync(ctx context.Context, items []models.Item) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if err := writeItem(tx, it); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *DatabaseBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func writeItem(tx *gorm.DB, item models.Item) error {
	row := rowFromItem(item)
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert item %d: %w", item.ID, err)
	}
	if err := tx.Where("item_id = ?", item.ID).Delete(&IngredientRow{}).Error; err != nil {
		return fmt.Errorf("failed to clear ingredients of item %d: %w", item.ID, err)
	}
	if item.Recipe == nil || len(item.Recipe.Ingredients) == 0 {
		return nil
	}
	rows := make([]IngredientRow, 0, len(item.Recipe.Ingredients))
	for slot, in := range item.Recipe.Ingredients {
		rows = append(rows, IngredientRow{ItemID: item.ID, Slot: slot, IngredientID: in.ItemID, Quantity: in.Quantity})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to write ingredients of item %d: %w", item.ID, err)
	}
	return nil
}

func rowFromItem(it models.Item) ItemRow {
	row := ItemRow{
		ID:        it.ID,
		Name:      it.Name,
		Emoji:     it.Emoji,
		Category:  it.Category,
		IconURL:   it.IconURL,
		Price:     it.Price,
		Hydrated:  it.Hydrated,
		UpdatedAt: it.UpdatedAt,
	}
	if it.Recipe != nil {
		row.HasRecipe = true
		row.RecipeID = it.Recipe.RecipeID
		row.CraftType = it.Recipe.CraftType
		row.RecipeYield = it.Recipe.Yield
	}
	return row
}

func (r ItemRow) toItem(ingredients []models.Ingredient) models.Item {
	it := models.Item{
		ID:        r.ID,
		Name:      r.Name,
		Emoji:     r.Emoji,
		Category:  r.Category,
		IconURL:   r.IconURL,
		Price:     r.Price,
		Hydrated:  r.Hydrated,
		UpdatedAt: r.UpdatedAt,
	}
	if r.HasRecipe {
		it.Recipe = &models.Recipe{
			ItemID:      r.ID,
			RecipeID:    r.RecipeID,
			CraftType:   r.CraftType,
			Yield:       r.RecipeYield,
			Ingredients: ingredients,
		}
	}
	return it
}

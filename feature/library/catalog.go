package library

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"bloom/core/utils"
	"bloom/feature/library/models"
)

// Catalog and media layout inside the bucket.
const (
	WorkoutsObject     = "catalog/workouts.json"
	RecipesObject      = "catalog/recipes.json"
	WorkoutMediaPrefix = "media/workouts/"
	RecipeMediaPrefix  = "media/recipes/"
)

func objectFor(kind models.Kind) string {
	if kind == models.KindRecipe {
		return RecipesObject
	}
	return WorkoutsObject
}

func mediaPrefixFor(kind models.Kind) string {
	if kind == models.KindRecipe {
		return RecipeMediaPrefix
	}
	return WorkoutMediaPrefix
}

// parseCatalog decodes a catalog document. Catalogs are hand-edited, so the
// parse is tolerant: numbers may be strings, unknown fields are ignored and
// entries without an id are skipped. The item array lives under the kind's
// plural key, with "items" as a fallback.
func parseCatalog(kind models.Kind, data []byte) ([]models.Item, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", kind, err)
	}

	raw, ok := doc[string(kind)+"s"].([]any)
	if !ok {
		raw, _ = doc["items"].([]any)
	}

	items := make([]models.Item, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := models.Item{
			ID:          stringField(fields, "id"),
			Kind:        kind,
			Title:       stringField(fields, "title"),
			Category:    stringField(fields, "category"),
			Level:       stringField(fields, "level"),
			DurationMin: utils.ToInt(fields["duration_min"]),
			Kcal:        utils.ToInt(fields["kcal"]),
			Tags:        utils.ToStrings(fields["tags"]),
			Media:       stringField(fields, "media"),
		}
		if item.ID == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func stringField(fields map[string]any, key string) string {
	val, ok := fields[key]
	if !ok || val == nil {
		return ""
	}
	return utils.ToString(val)
}

// mediaKey extracts the catalog identifier from a media object name by
// dropping the directory and the file extension.
func mediaKey(objectName string) string {
	base := path.Base(objectName)
	return strings.TrimSuffix(base, path.Ext(base))
}

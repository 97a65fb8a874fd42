package cache

import (
	"context"
	"encoding/json"
	"time"

	"msvosa_back_end/internal/database"
	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

const (
	siteContentKey = "site_content"
	siteContentTTL = 10 * time.Minute
)

// GetSiteContent serves the site-content document from Redis when
// possible, falling back to the store and caching the result.
func GetSiteContent(ctx context.Context, contentStore store.ContentStore) (models.SiteContent, error) {
	data, err := database.Redis.Get(ctx, siteContentKey).Result()
	if err == nil {
		var content models.SiteContent
		if json.Unmarshal([]byte(data), &content) == nil {
			return content, nil
		}
	}

	content, err := contentStore.GetSiteContent(ctx)
	if err != nil {
		return models.SiteContent{}, err
	}

	if raw, err := json.Marshal(content); err == nil {
		database.Redis.Set(ctx, siteContentKey, raw, siteContentTTL)
	}
	return content, nil
}

// InvalidateSiteContent drops the cached document. Called after every
// publish so public pages pick up the new content immediately.
func InvalidateSiteContent(ctx context.Context) {
	database.Redis.Del(ctx, siteContentKey)
}

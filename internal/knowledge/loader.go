package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PeterSoManLung/FindDinning-sub001/config"
	"github.com/PeterSoManLung/FindDinning-sub001/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// moodMappingAsset is the JSON shape of the hosted knowledge asset.
type moodMappingAsset struct {
	Mappings map[string]models.MoodMapping `json:"mappings"`
}

// LoadMoodMappings returns the mood-mapping table, overlaying any entries
// published as a JSON asset in the knowledge bucket on top of the
// compiled-in defaults. A missing or unreadable asset is not an error for
// startup: the defaults always stand on their own.
func LoadMoodMappings(ctx context.Context, store *config.S3Config, key string) (map[string]models.MoodMapping, error) {
	mappings := DefaultMoodMappings()
	if store == nil || key == "" {
		return mappings, nil
	}

	out, err := store.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(store.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return mappings, fmt.Errorf("failed to fetch mood mapping asset: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return mappings, fmt.Errorf("failed to read mood mapping asset: %w", err)
	}

	overlay, err := ParseMoodMappingAsset(data)
	if err != nil {
		return mappings, err
	}
	for emotion, mapping := range overlay {
		mapping.Emotion = emotion
		mappings[emotion] = mapping
	}
	return mappings, nil
}

// ParseMoodMappingAsset decodes a published mood-mapping override.
func ParseMoodMappingAsset(data []byte) (map[string]models.MoodMapping, error) {
	var asset moodMappingAsset
	if err := json.Unmarshal(data, &asset); err != nil {
		return nil, fmt.Errorf("failed to parse mood mapping asset: %w", err)
	}
	return asset.Mappings, nil
}

package shared

import (
	"appointly/shared/cache"
	"appointly/shared/constant"
	"appointly/shared/dto"
	"appointly/shared/timezone"
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to int: %w", value, err)
	}

	return intValue, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the parts into a colon separated key, e.g. appointment:owner-1:42.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends the query values to the key in a stable order.
// Empty values are skipped so that absent and blank parameters share a key.
func BuildCacheKeyWithQuery(prefix string, query map[string]any) string {
	keys := make([]string, 0, len(query))

	for key, value := range query {
		if value == nil || fmt.Sprint(value) == "" {
			continue
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := []string{prefix}
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, query[key]))
	}

	return BuildCacheKey(parts...)
}

// InvalidateCaches removes every key starting with prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// AvailabilityGenerationKey is the key of the counter versioning the cached slot lists of ownerID.
func AvailabilityGenerationKey(ownerID string) string {
	return BuildCacheKey(constant.CacheKeyAvailabilityGeneration, ownerID)
}

// ExpireAvailability retires every cached slot list of ownerID before it returns.
// Lists saved later under an older generation are never read again. When the
// counter cannot be bumped the lists are cleared instead.
func ExpireAvailability(ctx context.Context, redisCache cache.RedisCache, ownerID string) {
	if _, err := redisCache.Bump(ctx, AvailabilityGenerationKey(ownerID)); err == nil {
		return
	}

	InvalidateCaches(ctx, redisCache, BuildCacheKey(constant.CacheKeyAvailability, ownerID))
}

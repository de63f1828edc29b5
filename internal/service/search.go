package service

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/types"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type summaryRow struct {
	ID        uint
	Username  string
	FirstName string
	LastName  string
}

// Search builds the filtered, paginated profile listing. Filters are
// conjunctive, substring matches are case-insensitive, and the requester's
// own profile is always excluded. Ordering is by profile id ascending so
// pagination stays stable.
func (s *ProfileService) Search(ctx context.Context, viewerID uint, filters types.SearchFilters, page, pageSize int) (*types.SearchPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	q := s.db.WithContext(ctx).Model(&models.Profile{}).
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("profiles.user_id <> ?", viewerID)

	if filters.User != "" {
		ids, err := parseIDList(filters.User)
		if err != nil {
			return nil, err
		}
		q = q.Where("profiles.user_id IN ?", ids)
	}
	if filters.Username != "" {
		q = q.Where("LOWER(users.username) LIKE ? ESCAPE '\\'", containsPattern(filters.Username))
	}
	if filters.FirstName != "" {
		q = q.Where("LOWER(users.first_name) LIKE ? ESCAPE '\\'", containsPattern(filters.FirstName))
	}
	if filters.LastName != "" {
		q = q.Where("LOWER(users.last_name) LIKE ? ESCAPE '\\'", containsPattern(filters.LastName))
	}

	// Reused below for both the count and the page query.
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []summaryRow
	err := q.Select("profiles.id AS id, users.username AS username, users.first_name AS first_name, users.last_name AS last_name").
		Order("profiles.id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return &types.SearchPage{
		Results:  summarize(rows),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// parseIDList converts a comma-separated id list into integers. A
// non-numeric token is a client error, not a crash.
func parseIDList(raw string) ([]uint, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, validationf("user filter contains a non-numeric id %q", token)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive substring pattern. LIKE
// wildcards in the input are escaped so they match literally.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}

func summarize(rows []summaryRow) []types.ProfileSummary {
	results := make([]types.ProfileSummary, len(rows))
	for i, row := range rows {
		results[i] = types.ProfileSummary{
			ID:       row.ID,
			Username: row.Username,
			FullName: strings.TrimSpace(row.FirstName + " " + row.LastName),
		}
	}
	return results
}

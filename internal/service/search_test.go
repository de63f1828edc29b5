package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/models"
	"github.com/sociable/social-api/internal/types"
)

// seedSearchFixtures registers the viewer plus three searchable users and
// returns the viewer's user id.
func seedSearchFixtures(t *testing.T, db *gorm.DB) uint {
	viewer := seedUser(t, db, "viewer@example.com", "viewer", "Vera", "Onlooker")
	seedUser(t, db, "anna@example.com", "anna", "Anna", "Maywood")
	seedUser(t, db, "annabel@example.com", "annabel", "Annabel", "Stone")
	seedUser(t, db, "bob@example.com", "bob", "Bob", "Riley")
	return viewer.ID
}

func TestSearchExcludesRequester(t *testing.T) {
	_, db := newAuthService(t)
	viewerID := seedSearchFixtures(t, db)

	svc := NewProfileService(db)
	page, err := svc.Search(context.Background(), viewerID, types.SearchFilters{}, 1, 0)
	require.NoError(t, err)

	assert.EqualValues(t, 3, page.Total)
	for _, row := range page.Results {
		assert.NotEqual(t, "viewer", row.Username)
	}
}

func TestSearchUsernameSubstringCaseInsensitive(t *testing.T) {
	_, db := newAuthService(t)
	viewerID := seedSearchFixtures(t, db)

	svc := NewProfileService(db)
	page, err := svc.Search(context.Background(), viewerID, types.SearchFilters{Username: "ANN"}, 1, 0)
	require.NoError(t, err)

	require.Len(t, page.Results, 2)
	assert.Equal(t, "anna", page.Results[0].Username)
	assert.Equal(t, "annabel", page.Results[1].Username)
}

func TestSearchWildcardInputMatchesLiterally(t *testing.T) {
	_, db := newAuthService(t)
	viewerID := seedSearchFixtures(t, db)
	seedUser(t, db, "percy@example.com", "percy", "100% Percy", "Under_Score")

	svc := NewProfileService(db)

	page, err := svc.Search(context.Background(), viewerID, types.SearchFilters{FirstName: "%"}, 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "percy", page.Results[0].Username)

	page, err = svc.Search(context.Background(), viewerID, types.SearchFilters{LastName: "_"}, 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "percy", page.Results[0].Username)
}

func TestSearchConjunctiveFilters(t *testing.T) {
	_, db := newAuthService(t)
	viewerID := seedSearchFixtures(t, db)

	svc := NewProfileService(db)
	page, err := svc.Search(context.Background(), viewerID, types.SearchFilters{
		Username:  "ann",
		FirstName: "Annabel",
	}, 1, 0)
	require.NoError(t, err)

	require.Len(t, page.Results, 1)
	assert.Equal(t, "annabel", page.Results[0].Username)
	assert.Equal(t, "Annabel Stone", page.Results[0].FullName)
}

func TestSearchUserIDFilter(t *testing.T) {
	_, db := newAuthService(t)
	viewerID := seedSearchFixtures(t, db)

	var anna models.User
	require.NoError(t, db.Where("username = ?", "anna").First(&anna).Error)
	var bob models.User
	require.NoError(t, db.Where("username = ?", "bob").First(&bob).Error)

	svc := NewProfileService(db)
	page, err := svc.Search(context.Background(), viewerID, types.SearchFilters{
		User: formatIDs(anna.ID, bob.ID),
	}, 1, 0)
	require.NoError(t, err)

	require.Len(t, page.Results, 2)
	assert.Equal(t, "anna", page.Results[0].Username)
	assert.Equal(t, "bob", page.Results[1].Username)
}

func TestSearchMalformedUserFilter(t *testing.T) {
	_, db := newAuthService(t)
	viewerID := seedSearchFixtures(t, db)

	svc := NewProfileService(db)
	_, err := svc.Search(context.Background(), viewerID, types.SearchFilters{User: "abc"}, 1, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Search(context.Background(), viewerID, types.SearchFilters{User: "1,x,3"}, 1, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSearchPaginationStableOrder(t *testing.T) {
	_, db := newAuthService(t)
	viewerID := seedSearchFixtures(t, db)

	svc := NewProfileService(db)

	first, err := svc.Search(context.Background(), viewerID, types.SearchFilters{}, 1, 2)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), viewerID, types.SearchFilters{}, 2, 2)
	require.NoError(t, err)

	assert.EqualValues(t, 3, first.Total)
	require.Len(t, first.Results, 2)
	require.Len(t, second.Results, 1)

	// Ids ascend across pages with no overlap.
	assert.Less(t, first.Results[0].ID, first.Results[1].ID)
	assert.Less(t, first.Results[1].ID, second.Results[0].ID)
}

func formatIDs(ids ...uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

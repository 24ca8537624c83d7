package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cloverwhale/cafe-and-wifi/database"
	"github.com/cloverwhale/cafe-and-wifi/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.MigrateWeb(db))
	require.NoError(t, database.MigrateDirectory(db))
	return db
}

func directoryCafe(name, location string) *model.DirectoryCafe {
	return &model.DirectoryCafe{
		Name:        name,
		MapURL:      "https://maps.example.com/" + name,
		ImgURL:      "https://img.example.com/" + name,
		Location:    location,
		Seats:       "20-30",
		HasWifi:     true,
		CoffeePrice: "£2.50",
	}
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	require.NoError(t, users.Create(&model.User{Name: "alice", Email: "a@example.com", Password: "x"}))
	err := users.Create(&model.User{Name: "other", Email: "a@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	var count int64
	users.db.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "second attempt must not create a row")
}

func TestUserStoreDuplicateName(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	require.NoError(t, users.Create(&model.User{Name: "alice", Email: "a@example.com", Password: "x"}))
	err := users.Create(&model.User{Name: "alice", Email: "b@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCafeStoreStampsWrites(t *testing.T) {
	cafes := NewCafeStore(newTestDB(t))

	cafe := &model.Cafe{Name: "Grind", Location: "London", MapURL: "https://m", ImgURL: "https://i"}
	require.NoError(t, cafes.Create(cafe, 7))

	require.NotNil(t, cafe.UpdatedByID)
	assert.EqualValues(t, 7, *cafe.UpdatedByID)
	assert.False(t, cafe.CreationTime.IsZero())
	assert.Equal(t, cafe.CreationTime, cafe.ModificationTime)

	cafe.Seats = "50+"
	require.NoError(t, cafes.Update(cafe, 9))
	assert.EqualValues(t, 9, *cafe.UpdatedByID)
	assert.False(t, cafe.ModificationTime.Before(cafe.CreationTime))
}

func TestCafeStoreDuplicateName(t *testing.T) {
	cafes := NewCafeStore(newTestDB(t))

	require.NoError(t, cafes.Create(&model.Cafe{Name: "Grind", Location: "London", MapURL: "https://m", ImgURL: "https://i"}, 1))
	err := cafes.Create(&model.Cafe{Name: "Grind", Location: "Leeds", MapURL: "https://m2", ImgURL: "https://i2"}, 1)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCafeStoreDeleteMissing(t *testing.T) {
	cafes := NewCafeStore(newTestDB(t))
	assert.ErrorIs(t, cafes.Delete(42), gorm.ErrRecordNotFound)
}

func TestDirectoryByLocation(t *testing.T) {
	dir := NewDirectoryStore(newTestDB(t))
	require.NoError(t, dir.Create(directoryCafe("One", "Peckham")))
	require.NoError(t, dir.Create(directoryCafe("Two", "Peckham")))
	require.NoError(t, dir.Create(directoryCafe("Three", "Soho")))

	matches, err := dir.ByLocation("Peckham")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	none, err := dir.ByLocation("Nowhere")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDirectoryUpdatePriceIsPartial(t *testing.T) {
	dir := NewDirectoryStore(newTestDB(t))
	cafe := directoryCafe("One", "Peckham")
	require.NoError(t, dir.Create(cafe))

	require.NoError(t, dir.UpdatePrice(cafe.ID, "£3.00"))

	after, err := dir.ByID(cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, "£3.00", after.CoffeePrice)

	before := *cafe
	before.CoffeePrice = after.CoffeePrice
	assert.Equal(t, before, *after, "only coffee_price may change")
}

func TestDirectoryUpdatePriceMissing(t *testing.T) {
	dir := NewDirectoryStore(newTestDB(t))
	assert.ErrorIs(t, dir.UpdatePrice(99, "£1.00"), gorm.ErrRecordNotFound)
}

func TestDirectoryRandomSurvivesGaps(t *testing.T) {
	dir := NewDirectoryStore(newTestDB(t))
	first := directoryCafe("One", "Peckham")
	second := directoryCafe("Two", "Soho")
	third := directoryCafe("Three", "Angel")
	require.NoError(t, dir.Create(first))
	require.NoError(t, dir.Create(second))
	require.NoError(t, dir.Create(third))
	require.NoError(t, dir.Delete(second.ID))

	seen := map[uint]bool{}
	for range 50 {
		cafe, err := dir.Random()
		require.NoError(t, err)
		assert.NotEqual(t, second.ID, cafe.ID, "deleted rows must never be drawn")
		seen[cafe.ID] = true
	}
	assert.True(t, seen[first.ID] && seen[third.ID], "draw should cover the surviving ids")
}

func TestDirectoryRandomEmpty(t *testing.T) {
	dir := NewDirectoryStore(newTestDB(t))
	_, err := dir.Random()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

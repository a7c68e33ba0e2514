package repositories

import (
	"fmt"
	"testing"

	"gin-crud-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.BlacklistedToken{}))
	return db
}

func createTestUser(t *testing.T, repository IUserRepository, email string) *models.User {
	t.Helper()
	user, err := repository.Create(models.User{
		Email:          email,
		HashedPassword: "hashed",
		IsActive:       true,
	})
	require.NoError(t, err)
	return user
}

func TestRecordRepositoryCreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repository := NewUserRepository(db)

	created := createTestUser(t, repository, "a@example.com")
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repository.Find(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Email, found.Email)
	assert.Equal(t, created.IsActive, found.IsActive)

	_, err = repository.Find(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordRepositoryFindPage(t *testing.T) {
	db := setupTestDB(t)
	userRepository := NewUserRepository(db)
	itemRepository := NewItemRepository(db)

	owner := createTestUser(t, userRepository, "owner@example.com")
	for i := 1; i <= 5; i++ {
		_, err := itemRepository.CreateWithOwner(models.Item{
			Title: fmt.Sprintf("Item %d", i),
			Price: float64(i),
		}, owner.ID)
		require.NoError(t, err)
	}

	page, err := itemRepository.FindPage(1, 2)
	require.NoError(t, err)
	require.Len(t, *page, 2)
	assert.Equal(t, "Item 2", (*page)[0].Title)
	assert.Equal(t, "Item 3", (*page)[1].Title)

	empty, err := itemRepository.FindPage(10, 2)
	require.NoError(t, err)
	assert.Empty(t, *empty)
}

func TestRecordRepositorySaveKeepsIdentity(t *testing.T) {
	db := setupTestDB(t)
	userRepository := NewUserRepository(db)
	itemRepository := NewItemRepository(db)

	owner := createTestUser(t, userRepository, "owner@example.com")
	item, err := itemRepository.CreateWithOwner(models.Item{Title: "Book", Price: 9.99}, owner.ID)
	require.NoError(t, err)

	item.Price = 19.99
	saved, err := itemRepository.Save(item)
	require.NoError(t, err)

	found, err := itemRepository.Find(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 19.99, found.Price)
	assert.Equal(t, item.ID, found.ID)
	assert.Equal(t, item.CreatedAt.Unix(), found.CreatedAt.Unix())
}

func TestRecordRepositoryRemove(t *testing.T) {
	db := setupTestDB(t)
	repository := NewUserRepository(db)

	created := createTestUser(t, repository, "a@example.com")

	removed, err := repository.Remove(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, removed.Email)

	_, err = repository.Find(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repository.Remove(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repository := NewUserRepository(db)

	created := createTestUser(t, repository, "a@example.com")

	found, err := repository.FindByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repository.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepositoryCreateWithOwnerOverridesOwner(t *testing.T) {
	db := setupTestDB(t)
	userRepository := NewUserRepository(db)
	itemRepository := NewItemRepository(db)

	owner := createTestUser(t, userRepository, "owner@example.com")

	// 入力に別のowner_idが紛れ込んでいても解決済みIDで上書きされる
	item, err := itemRepository.CreateWithOwner(models.Item{
		Title:   "Book",
		Price:   9.99,
		OwnerID: 9999,
	}, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, item.OwnerID)
}

func TestTokenRepositoryBlacklist(t *testing.T) {
	db := setupTestDB(t)
	repository := NewTokenRepository(db)

	blacklisted, err := repository.IsTokenBlacklisted("some-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, repository.AddBlacklistedToken("some-token", 0))

	blacklisted, err = repository.IsTokenBlacklisted("some-token")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// expires_at=0は過去なので掃除で消える
	require.NoError(t, repository.CleanExpiredTokens())
	blacklisted, err = repository.IsTokenBlacklisted("some-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

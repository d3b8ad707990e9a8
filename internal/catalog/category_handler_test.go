package catalog

import (
	"encoding/json"
	"net/http"
	"testing"

	"store-admin-backend/internal/models"
	"store-admin-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryNeedsBillboardOfSameStore(t *testing.T) {
	db := testutil.UseGlobalDB(t)
	mine := testutil.SeedCatalog(t, db, owner)
	theirs := testutil.SeedCatalog(t, db, "other-owner")
	app := newCatalogApp(t, &testutil.ObjectStore{})
	token := testutil.Token(t, owner)
	base := "/api/" + mine.Store.ID + "/categories"

	status, raw := testutil.Do(t, app, http.MethodPost, base, token, fiber.Map{
		"name": "Hats", "billboard_id": theirs.Billboard.ID,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Choose a billboard of this store", testutil.ErrorMessage(t, raw))

	status, raw = testutil.Do(t, app, http.MethodPost, base, token, fiber.Map{
		"name": "Hats", "billboard_id": mine.Billboard.ID,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = testutil.Do(t, app, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, status)
	var list []models.Category
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 2)
	assert.Equal(t, mine.Billboard.ID, list[0].Billboard.ID)
}

func TestCategoryInUseCannotBeDeleted(t *testing.T) {
	db := testutil.UseGlobalDB(t)
	c := testutil.SeedCatalog(t, db, owner)
	app := newCatalogApp(t, &testutil.ObjectStore{})

	status, _ := testutil.Do(t, app, http.MethodDelete, "/api/"+c.Store.ID+"/categories/"+c.Category.ID, testutil.Token(t, owner), nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestCategoryUpdate(t *testing.T) {
	db := testutil.UseGlobalDB(t)
	c := testutil.SeedCatalog(t, db, owner)
	app := newCatalogApp(t, &testutil.ObjectStore{})

	status, raw := testutil.Do(t, app, http.MethodPatch, "/api/"+c.Store.ID+"/categories/"+c.Category.ID, testutil.Token(t, owner), fiber.Map{
		"name": "Tops", "billboard_id": c.Billboard.ID,
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var got models.Category
	require.NoError(t, db.First(&got, "id = ?", c.Category.ID).Error)
	assert.Equal(t, "Tops", got.Name)
}

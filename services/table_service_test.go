package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dineres/booking-backend/models"
	"github.com/dineres/booking-backend/repositories"
	"github.com/dineres/booking-backend/services"
	"github.com/dineres/booking-backend/utils"
)

func newTableService(t *testing.T) *services.TableService {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Table{}); err != nil {
		t.Fatal(err)
	}
	return services.NewTableService(repositories.NewTableRepository(db))
}

func TestCreateTableSuccess(t *testing.T) {
	svc := newTableService(t)

	table, err := svc.Create(&models.Table{Number: 1, Capacity: 4})
	assert.NoError(t, err)
	assert.NotZero(t, table.ID)

	stored, err := svc.GetByID(table.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.Number)
	assert.Equal(t, 4, stored.Capacity)

	byNumber, err := svc.GetByNumber(1)
	assert.NoError(t, err)
	assert.Equal(t, table.ID, byNumber.ID)
}

func TestCreateTableValidation(t *testing.T) {
	svc := newTableService(t)

	cases := []models.Table{
		{Number: 0, Capacity: 4},
		{Number: -5, Capacity: 4},
		{Number: 1, Capacity: 0},
		{Number: 1, Capacity: -1},
		{Number: 1, Capacity: 11},
	}
	for _, tc := range cases {
		_, err := svc.Create(&models.Table{Number: tc.Number, Capacity: tc.Capacity})
		assert.ErrorIs(t, err, services.ErrValidation,
			"number=%d capacity=%d should be rejected", tc.Number, tc.Capacity)
	}

	tables, err := svc.List()
	assert.NoError(t, err)
	assert.Empty(t, tables)
}

func TestUpdateTable(t *testing.T) {
	svc := newTableService(t)

	created, err := svc.Create(&models.Table{Number: 1, Capacity: 4})
	assert.NoError(t, err)

	updated, err := svc.Update(created.ID, models.Table{Number: 2, Capacity: 6})
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.Number)
	assert.Equal(t, 6, updated.Capacity)

	_, err = svc.Update(created.ID, models.Table{Number: 2, Capacity: 15})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestUpdateTableNotFound(t *testing.T) {
	svc := newTableService(t)

	_, err := svc.Update(999, models.Table{Number: 1, Capacity: 4})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteTableNotFound(t *testing.T) {
	svc := newTableService(t)

	_, err := svc.Create(&models.Table{Number: 1, Capacity: 4})
	assert.NoError(t, err)

	err = svc.Delete(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// No state change.
	tables, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
}

func TestTableExists(t *testing.T) {
	svc := newTableService(t)

	created, err := svc.Create(&models.Table{Number: 7, Capacity: 4})
	assert.NoError(t, err)

	exists, err := svc.Exists(created.ID)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByNumber(7)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByNumber(8)
	assert.NoError(t, err)
	assert.False(t, exists)
}

package sqlite

import (
	"context"
	"testing"

	"PharmaKeeper/internal/cli/model"
	"PharmaKeeper/internal/cli/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paracetamol() model.Medicine {
	return model.Medicine{
		Name:       "Paracetamol",
		Type:       string(model.TypeStrip),
		Quantity:   "10",
		ExpiryDate: "2025-12-31",
		BatchNo:    "B1",
		Price:      12.5,
	}
}

func TestMedicineRepository_AddUpdateDelete(t *testing.T) {
	r := newTestRegistry(t)
	meds := NewMedicineRepository(mustInit(t, r, "Central"))
	ctx := context.Background()

	list, err := meds.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	id, rows, err := meds.Add(ctx, paracetamol())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, rows, 1)
	want := paracetamol()
	want.ID = id
	assert.Equal(t, want, rows[0])

	upd := want
	upd.Quantity = "20"
	upd.Price = 30
	rows, err = meds.Update(ctx, upd)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "20", rows[0].Quantity)
	assert.Equal(t, 30.0, rows[0].Price)
	assert.Equal(t, "B1", rows[0].BatchNo)

	got, err := meds.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, upd, *got)

	rows, err = meds.Delete(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMedicineRepository_ChangesOnlyTargetRow(t *testing.T) {
	r := newTestRegistry(t)
	meds := NewMedicineRepository(mustInit(t, r, "Central"))
	ctx := context.Background()

	first := model.Medicine{Name: "Paracetamol", Type: "strip", Quantity: "10", ExpiryDate: "2025-12-01", BatchNo: "B100", Price: 25}
	second := model.Medicine{Name: "Cough Syrup", Type: "liquid", Quantity: "4", ExpiryDate: "2026-02-15", BatchNo: "S7", Price: 12.5}

	id, _, err := meds.Add(ctx, first)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	first.ID = id
	second.ID, _, err = meds.Add(ctx, second)
	require.NoError(t, err)

	upd := first
	upd.Quantity = "20"
	upd.Price = 30
	rows, err := meds.Update(ctx, upd)
	require.NoError(t, err)
	assert.Equal(t, []model.Medicine{upd, second}, rows)

	rows, err = meds.Delete(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, []model.Medicine{upd, second}, rows)

	rows, err = meds.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []model.Medicine{second}, rows)
}

func TestMedicineRepository_OrderedByID(t *testing.T) {
	r := newTestRegistry(t)
	meds := NewMedicineRepository(mustInit(t, r, "Central"))
	ctx := context.Background()

	for _, name := range []string{"Zinc", "Aspirin", "Ibuprofen"} {
		_, _, err := meds.Add(ctx, model.Medicine{Name: name})
		require.NoError(t, err)
	}
	list, err := meds.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Zinc", list[0].Name)
	assert.Equal(t, "Aspirin", list[1].Name)
	assert.Equal(t, "Ibuprofen", list[2].Name)
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

func TestMedicineRepository_MissingRows(t *testing.T) {
	r := newTestRegistry(t)
	meds := NewMedicineRepository(mustInit(t, r, "Central"))
	ctx := context.Background()

	_, _, err := meds.Add(ctx, paracetamol())
	require.NoError(t, err)

	// удаление отсутствующего id - не ошибка, таблица не меняется
	rows, err := meds.Delete(ctx, 999)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	m := paracetamol()
	m.ID = 999
	_, err = meds.Update(ctx, m)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = meds.Get(ctx, 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMedicineRepository_PersistsAcrossReinitialize(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()
	_, _, err := NewMedicineRepository(mustInit(t, r, "Central")).Add(ctx, paracetamol())
	require.NoError(t, err)

	r.Shutdown("Central")
	list, err := NewMedicineRepository(mustInit(t, r, "Central")).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Paracetamol", list[0].Name)

	// другая аптека - другая база
	other, err := NewMedicineRepository(mustInit(t, r, "North")).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGeneralItemRepository_CRUD(t *testing.T) {
	r := newTestRegistry(t)
	items := NewGeneralItemRepository(mustInit(t, r, "Central"))
	ctx := context.Background()

	id, rows, err := items.Add(ctx, model.GeneralItem{Name: "Face mask", Quantity: "100", Price: 0.75})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.GeneralItem{ID: id, Name: "Face mask", Quantity: "100", Price: 0.75}, rows[0])

	thermoID, rows, err := items.Add(ctx, model.GeneralItem{Name: "Thermometer"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	thermo := model.GeneralItem{ID: thermoID, Name: "Thermometer"}
	assert.Equal(t, thermo, rows[1])

	rows, err = items.Update(ctx, model.GeneralItem{ID: id, Name: "Face mask", Quantity: "80", Price: 0.8})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "80", rows[0].Quantity)
	assert.Equal(t, 0.8, rows[0].Price)
	assert.Equal(t, thermo, rows[1])

	_, err = items.Update(ctx, model.GeneralItem{ID: 404, Name: "ghost"})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = items.Get(ctx, 404)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	rows, err = items.Delete(ctx, id)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Thermometer", rows[0].Name)

	rows, err = items.Delete(ctx, id)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRepositories_FailOnBrokenConnection(t *testing.T) {
	r := newTestRegistry(t)
	c := mustInit(t, r, "Central")
	r.Shutdown("Central")

	_, err := NewMedicineRepository(c).List(context.Background())
	assert.ErrorIs(t, err, ErrNotReady)
	_, _, err = NewGeneralItemRepository(c).Add(context.Background(), model.GeneralItem{Name: "x"})
	assert.ErrorIs(t, err, ErrNotReady)
}

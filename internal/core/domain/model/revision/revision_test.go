package revision_test

import (
	"testing"
	"time"

	"greenspace/internal/core/domain/model/kernel"
	"greenspace/internal/core/domain/model/revision"
	"greenspace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	images := []string{"https://cdn.example.com/sketch-1.png"}

	record, err := revision.NewRecord(id, orderID, revision.KindSketch, 1, images)

	require.NoError(t, err)
	require.NoError(t, record.Validate())
	assert.Equal(t, id, record.ID())
	assert.Equal(t, orderID, record.ServiceOrderID())
	assert.Equal(t, revision.KindSketch, record.Kind())
	assert.Equal(t, 1, record.Phase())
	assert.Equal(t, images, record.Images())
	assert.False(t, record.IsSelected())
	assert.False(t, record.CreatedAt().IsZero())
}

func TestNewRecord_PhaseBounds(t *testing.T) {
	orderID := kernel.NewUUID()
	images := []string{"https://cdn.example.com/sketch-1.png"}

	for phase := 0; phase <= revision.PhaseCeiling; phase++ {
		record, err := revision.NewRecord(kernel.NewUUID(), orderID, revision.KindSketch, phase, images)

		require.NoError(t, err)
		assert.Equal(t, phase, record.Phase())
	}

	_, err := revision.NewRecord(kernel.NewUUID(), orderID, revision.KindSketch, revision.PhaseCeiling+1, images)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = revision.NewRecord(kernel.NewUUID(), orderID, revision.KindSketch, -1, images)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRecord_ImageBounds(t *testing.T) {
	orderID := kernel.NewUUID()

	_, err := revision.NewRecord(kernel.NewUUID(), orderID, revision.KindDesign, 1, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = revision.NewRecord(kernel.NewUUID(), orderID, revision.KindDesign, 1, []string{"a.png", ""})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	tooMany := []string{"a.png", "b.png", "c.png", "d.png"}
	_, err = revision.NewRecord(kernel.NewUUID(), orderID, revision.KindDesign, 1, tooMany)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	record, err := revision.NewRecord(kernel.NewUUID(), orderID, revision.KindDesign, 1, tooMany[:revision.MaxImages])
	require.NoError(t, err)
	assert.Len(t, record.Images(), revision.MaxImages)
}

func TestNewRecord_InvalidKind(t *testing.T) {
	_, err := revision.NewRecord(
		kernel.NewUUID(),
		kernel.NewUUID(),
		revision.KindUnknown,
		1,
		[]string{"a.png"},
	)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreRecord(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	record, err := revision.RestoreRecord(
		id,
		orderID,
		revision.KindDesign,
		2,
		[]string{"a.png", "b.png"},
		true,
		createdAt,
	)

	require.NoError(t, err)
	assert.True(t, record.IsSelected())
	assert.Equal(t, createdAt, record.CreatedAt())
}

func TestRecord_Selection(t *testing.T) {
	record, err := revision.NewRecord(
		kernel.NewUUID(),
		kernel.NewUUID(),
		revision.KindSketch,
		1,
		[]string{"a.png"},
	)
	require.NoError(t, err)

	record.MarkSelected()
	assert.True(t, record.IsSelected())

	record.ClearSelected()
	assert.False(t, record.IsSelected())
}

func TestKind_Validate(t *testing.T) {
	require.NoError(t, revision.KindSketch.Validate())
	require.NoError(t, revision.KindDesign.Validate())
	require.Error(t, revision.KindUnknown.Validate())
	require.Error(t, revision.Kind(42).Validate())
}

func TestRecord_Validate_NotConstructed(t *testing.T) {
	var record revision.Record
	require.ErrorIs(t, record.Validate(), revision.ErrRecordIsNotConstructed)
}

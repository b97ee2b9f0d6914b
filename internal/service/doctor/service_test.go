package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

func TestListReturnsFullDirectory(t *testing.T) {
	svc := NewService()

	doctors := svc.List("")
	require.Len(t, doctors, 6)

	specialties := make(map[string]bool)
	for _, d := range doctors {
		specialties[d.Specialty] = true
	}
	assert.True(t, specialties["Cardiology"])
	assert.True(t, specialties["General Medicine"])
}

func TestListFiltersBySpecialtyCaseInsensitive(t *testing.T) {
	svc := NewService()

	for _, q := range []string{"Cardiology", "cardiology", "CARDIOLOGY"} {
		doctors := svc.List(q)
		require.Len(t, doctors, 1, "query %q", q)
		assert.Equal(t, "doc-002", doctors[0].ID)
	}

	assert.Empty(t, svc.List("Cardio"))
}

func TestGet(t *testing.T) {
	svc := NewService()

	doc, err := svc.Get("doc-001")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Mitchell", doc.Name)

	_, err = svc.Get("doc-999")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPStatus())
	assert.Equal(t, "Doctor not found", appErr.Message)
}

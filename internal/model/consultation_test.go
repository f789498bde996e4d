package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListRoundTrip(t *testing.T) {
	original := ImageList{"http://a/1.png", "http://a/2.png"}

	value, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, `["http://a/1.png","http://a/2.png"]`, value)

	var decoded ImageList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestImageListEmptyStoredAsNull(t *testing.T) {
	for _, list := range []ImageList{nil, {}} {
		value, err := list.Value()
		require.NoError(t, err)
		assert.Nil(t, value)
	}
}

func TestImageListScanNull(t *testing.T) {
	decoded := ImageList{"stale"}
	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, []string(decoded))
}

func TestImageListScanBytes(t *testing.T) {
	var decoded ImageList
	require.NoError(t, decoded.Scan([]byte(`["http://b/x.jpg"]`)))
	assert.Equal(t, ImageList{"http://b/x.jpg"}, decoded)
}

func TestImageListScanRejectsGarbage(t *testing.T) {
	var decoded ImageList
	assert.Error(t, decoded.Scan("not json"))
	assert.Error(t, decoded.Scan(42))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, ConsultationStatusPending.Terminal())
	assert.False(t, ConsultationStatusAssigned.Terminal())
	assert.True(t, ConsultationStatusCompleted.Terminal())
	assert.True(t, ConsultationStatusCancelled.Terminal())
}

func TestValidSpecialty(t *testing.T) {
	assert.True(t, ValidSpecialty(""))
	assert.True(t, ValidSpecialty("Acne & rosacea"))
	assert.False(t, ValidSpecialty("Cardiology"))
}

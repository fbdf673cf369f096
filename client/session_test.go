package client

import (
	"os"
	"path/filepath"
	"testing"

	"local-market/models"

	"github.com/stretchr/testify/assert"
)

func TestOpenSessionGeneratesDeviceID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := OpenSession(path)
	assert.NoError(t, err)
	assert.Regexp(t, `^device_\d+_[a-z0-9]+$`, s.DeviceID())
	assert.False(t, s.LoggedIn())
}

func TestSessionDeviceIDSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := OpenSession(path)
	assert.NoError(t, err)
	deviceID := first.DeviceID()

	second, err := OpenSession(path)
	assert.NoError(t, err)
	assert.Equal(t, deviceID, second.DeviceID())
}

func TestSessionLoginLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := OpenSession(path)
	assert.NoError(t, err)

	user := &models.User{ID: 3, Name: "Asha", Email: "asha@example.com"}
	assert.NoError(t, s.SetUser(user))
	assert.True(t, s.LoggedIn())

	reopened, err := OpenSession(path)
	assert.NoError(t, err)
	assert.True(t, reopened.LoggedIn())
	assert.Equal(t, "asha@example.com", reopened.User().Email)

	deviceID := reopened.DeviceID()
	assert.NoError(t, reopened.ClearUser())
	assert.False(t, reopened.LoggedIn())
	assert.Nil(t, reopened.User())
	assert.Equal(t, deviceID, reopened.DeviceID())
}

func TestSessionCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := OpenSession(path)
	assert.NoError(t, err)
	assert.False(t, s.LoggedIn())
	assert.NotEmpty(t, s.DeviceID())
}

package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "prod")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "adisyon.db"))
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("ADISYON_FIXTURE", "")
	t.Setenv("ADISYON_BCRYPT_COST", "4")
	t.Setenv("ADISYON_DEMO", "")
	t.Setenv("ADISYON_GENERATE_PASSWORDS", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
}

func TestSeedWithoutArgs(t *testing.T) {
	setupEnv(t)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Login credentials")
	assert.Contains(t, out, "sef1")

	out, err = execute(t, "inspect", "sef1")
	require.NoError(t, err)
	assert.Contains(t, out, "role:       CHEF")
	assert.Contains(t, out, "section:    NOSTAJI")
	assert.Contains(t, out, "Izgaralar")
	assert.Contains(t, out, "İçecekler")

	out, err = execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "(unchanged)")
}

func TestSeedRejectsSharedPasswordOutsideDemo(t *testing.T) {
	setupEnv(t)
	t.Setenv("ADISYON_DEMO", "0")

	_, err := execute(t)
	assert.Error(t, err)

	out, err := execute(t, "--generate-passwords")
	require.NoError(t, err)
	assert.NotContains(t, out, "123456")
}

func TestSeedBadFixture(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "--fixture", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInspectUnknownUser(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "migrate")
	require.NoError(t, err)
	_, err = execute(t, "inspect", "nobody")
	assert.Error(t, err)
}

func TestPasswordCmd(t *testing.T) {
	out, err := execute(t, "password", "--cost", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "password=")
	assert.Contains(t, out, "bcrypt=$2a$04$")
}

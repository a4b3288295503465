package database

import (
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	source, err := iofs.New(migrationFiles, "migrations")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, identifier, err := source.ReadUp(first)
	require.NoError(t, err)
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	up.Close()
	assert.Equal(t, "create_trivia_tables", identifier)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS questions")

	next, err := source.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	down, _, err := source.ReadDown(next)
	require.NoError(t, err)
	down.Close()
}

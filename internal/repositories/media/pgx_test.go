package media

import (
	"testing"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertStatementAbsorbsConflicts(t *testing.T) {
	t.Parallel()

	m := &domain.Media{
		MediaID:   "m-1",
		Username:  "brand",
		Kind:      domain.MediaKindImage,
		AccountID: 7,
	}

	stmt, err := insertStatement(m)
	require.NoError(t, err)

	assert.Contains(t, stmt.SQL, "INSERT INTO media")
	assert.Contains(t, stmt.SQL, "ON CONFLICT (media_id) DO NOTHING")
	assert.Contains(t, stmt.SQL, "$1")
	assert.Len(t, stmt.Args, 9)
}

func TestUpdateStatementTargetsSurrogateKey(t *testing.T) {
	t.Parallel()

	m := &domain.Media{
		ID:        42,
		MediaID:   "m-1",
		Caption:   "updated",
		Kind:      domain.MediaKindVideo,
		AccountID: 7,
	}

	stmt, err := updateStatement(m)
	require.NoError(t, err)

	assert.Contains(t, stmt.SQL, "UPDATE media SET")
	assert.Contains(t, stmt.SQL, "id = ")
	assert.NotContains(t, stmt.SQL, "media_id = ", "external id must not be rewritten")
	assert.Equal(t, int64(42), stmt.Args[len(stmt.Args)-1])
}

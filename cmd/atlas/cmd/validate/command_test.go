package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/appcontext"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
)

func TestCheck(t *testing.T) {
	warning := catalogs.Finding{ObjectID: "moon", Field: "parentId", Severity: catalogs.SeverityWarning}
	failure := catalogs.Finding{ObjectID: "x", Field: "rightAscension", Severity: catalogs.SeverityError}

	assert.NoError(t, Check(nil, true))
	assert.NoError(t, Check([]catalogs.Finding{warning}, false))
	assert.Error(t, Check([]catalogs.Finding{warning}, true))
	assert.Error(t, Check([]catalogs.Finding{failure}, false))
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	doc := `[
  {"id": "earth", "name": "Earth", "type": "PLANET", "category": "Solar System"},
  {"id": "moon", "name": "Moon", "type": "MOON", "category": "Solar System", "parentId": "earth"}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ObjectsFile), []byte(doc), 0o644))

	cmd := NewCommand(&appcontext.Mock{Dir: dir})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.JSONEq(t, `[]`, out.String())

	doc = `[{"id": "moon", "name": "", "type": "MOON", "category": "Solar System", "parentId": "earth", "rightAscension": 400, "declination": 0}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ObjectsFile), []byte(doc), 0o644))
	out.Reset()
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "rightAscension")
}

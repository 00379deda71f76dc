package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdfca/academy/internal/model"
)

func TestChoices(t *testing.T) {
	assert.Equal(t, "Goalkeeper, Defender, Midfielder, Forward", choices(model.Positions, ", "))
	assert.Equal(t, "pending|accepted|rejected", choices(model.RecordStatuses, "|"))
	assert.Empty(t, choices([]model.Position{}, ", "))
}

func TestPurgeRequiresConfirmation(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--server", "http://127.0.0.1:1", "purge"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestHelpListsChoices(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"coach", "apply", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), string(model.SpecializationYouth))
	assert.Contains(t, out.String(), string(model.CertificationCAFB))
}

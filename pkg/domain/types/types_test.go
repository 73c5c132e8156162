package types_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/demote/pkg/domain/types"
)

func TestNewRunID(t *testing.T) {
	id1, err := types.NewRunID()
	gt.NoError(t, err).Required()
	id2, err := types.NewRunID()
	gt.NoError(t, err).Required()

	gt.NotEqual(t, id1, id2)

	parsed, err := uuid.Parse(id1.String())
	gt.NoError(t, err).Required()
	gt.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewSessionID(t *testing.T) {
	id, err := types.NewSessionID()
	gt.NoError(t, err).Required()
	gt.NotEqual(t, "", id.String())
}

package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitions_EveryActionHasRow(t *testing.T) {
	for _, a := range Actions() {
		tr, ok := TransitionFor(a)
		require.True(t, ok, "action %s", a)
		assert.NotEmpty(t, tr.From, "action %s", a)
		assert.NotEmpty(t, tr.To, "action %s", a)
	}
}

func TestTransitions_StatesAreKnown(t *testing.T) {
	known := make(map[Status]bool)
	for _, s := range Statuses() {
		known[s] = true
	}
	for _, a := range Actions() {
		tr, _ := TransitionFor(a)
		for _, from := range tr.From {
			assert.True(t, known[from], "%s from %s", a, from)
		}
		assert.True(t, known[tr.To], "%s to %s", a, tr.To)
		if tr.Via != "" {
			assert.True(t, tr.Via.InProgress(), "%s via %s", a, tr.Via)
		}
	}
}

func TestAction_Allows(t *testing.T) {
	tests := []struct {
		action Action
		from   Status
		want   bool
	}{
		{ActionTranslate, StatusPending, true},
		{ActionTranslate, StatusError, true},
		{ActionTranslate, StatusPosted, false},
		{ActionGenerate, StatusTranslated, true},
		{ActionGenerate, StatusPending, false},
		{ActionProcess, StatusPublished, true},
		{ActionProcess, StatusPosted, true},
		{ActionProcess, StatusSkipped, false},
		{ActionProcess, StatusTranslating, false},
		{ActionPublish, StatusReady, true},
		{ActionPublish, StatusTranslated, false},
		{ActionPost, StatusPublished, true},
		{ActionPost, StatusPosted, false},
		{ActionUnpublish, StatusPublished, true},
		{ActionUnpublish, StatusPosted, true},
		{ActionUnpublish, StatusReady, false},
		{ActionSkip, StatusPending, true},
		{ActionSkip, StatusReady, true},
		{ActionSkip, StatusPublished, false},
		{ActionFail, StatusTranslating, true},
		{ActionFail, StatusGenerating, true},
		{ActionFail, StatusReady, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action)+"_from_"+string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.Allows(tt.from))
		})
	}
}

func TestAction_Check(t *testing.T) {
	err := ActionUnpublish.Check(StatusPending)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Contains(t, err.Error(), "unpublish")

	assert.NoError(t, ActionUnpublish.Check(StatusPosted))
}

func TestAction_HoldingAndTarget(t *testing.T) {
	assert.Equal(t, StatusTranslating, ActionTranslate.Holding())
	assert.Equal(t, StatusTranslated, ActionTranslate.Target())
	assert.Equal(t, StatusGenerating, ActionProcess.Holding())
	assert.Equal(t, StatusReady, ActionProcess.Target())
	assert.Equal(t, StatusSkipped, ActionSkip.Holding())
	assert.Equal(t, StatusTranslated, ActionUnpublish.Target())
}

func TestAction_FromReturnsCopy(t *testing.T) {
	from := ActionSkip.From()
	from[0] = StatusPosted
	assert.True(t, ActionSkip.Allows(StatusPending))
}

func TestUnpublishedStatuses_ExcludeTerminal(t *testing.T) {
	for _, s := range UnpublishedStatuses() {
		assert.False(t, s.Public())
		assert.NotEqual(t, StatusSkipped, s)
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("ready")
	require.NoError(t, err)
	assert.Equal(t, StatusReady, s)

	_, err = ParseStatus("archived")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDuplicateError_IsConflict(t *testing.T) {
	var err error = &DuplicateError{ArticleID: 7, Key: "https://example.com"}
	assert.ErrorIs(t, err, ErrConflict)

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(7), dup.ArticleID)
}

package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestRoute(t *testing.T) {
	assert.Equal(t, "/quests/abc", QuestRoute("abc"))
	assert.Equal(t, "/quests/:uuid", QuestRoute(":uuid"))
}

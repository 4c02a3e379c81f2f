package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_PlainJSON(t *testing.T) {
	input := `{"score": 12}`
	assert.Equal(t, `{"score": 12}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"score\": 12}\n```"
	assert.Equal(t, `{"score": 12}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"score\": 12}\n```"
	assert.Equal(t, `{"score": 12}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageTag(t *testing.T) {
	input := "```javascript\n{\"score\": 12}\n```"
	assert.Equal(t, `{"score": 12}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	input := "\n\n  {\"score\": 12}  \n"
	assert.Equal(t, `{"score": 12}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_BraceOnFirstLineNotTreatedAsLanguage(t *testing.T) {
	input := "```\n{\"a\":1}\n```"
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(input))
}

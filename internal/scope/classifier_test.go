package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGreetings(t *testing.T) {
	c := NewClassifier(true)

	for _, text := range []string{"hi", "Hi", "HELLO", "hey?", "Heyy!!", "  hello  there ", "namaste"} {
		assert.Equal(t, Greeting, c.Classify(text, Context{}), "text: %q", text)
	}
}

func TestClassifyGreetingInsideSentenceIsNotGreeting(t *testing.T) {
	c := NewClassifier(true)

	// A greeting token has to be the whole message.
	v := c.Classify("hi I need a visa for France", Context{})
	assert.Equal(t, InScope, v)
}

func TestClassifyCapabilityFirstMessageGating(t *testing.T) {
	c := NewClassifier(true)

	assert.Equal(t, CapabilityQuery, c.Classify("What can you do", Context{FirstUserMessage: true}))
	assert.Equal(t, CapabilityQuery, c.Classify("who are you?", Context{FirstUserMessage: true}))

	// After the first message the phrase falls through to the keyword rules.
	assert.Equal(t, OutOfScope, c.Classify("What can you do", Context{FirstUserMessage: false}))
}

func TestClassifyCapabilityWithoutGating(t *testing.T) {
	c := NewClassifier(false)

	assert.Equal(t, CapabilityQuery, c.Classify("what can you do", Context{FirstUserMessage: false}))
}

func TestClassifyInScope(t *testing.T) {
	c := NewClassifier(true)

	cases := []string{
		"I am an Indian applicant. What documents do I need for France and Germany study visas?",
		"how long does a schengen visa take",
		"Do I need travel insurance for Italy?",
		"when is my VFS appointment",
		"bank statement requirements for Netherlands",
	}
	for _, text := range cases {
		assert.Equal(t, InScope, c.Classify(text, Context{}), "text: %q", text)
	}
}

func TestClassifyNegativePrecedence(t *testing.T) {
	c := NewClassifier(true)

	// The excluded jurisdiction wins even when positive terms are present.
	cases := []string{
		"Should I apply for a USA visa or a Schengen visa?",
		"visa requirements for the united kingdom and France",
		"can you help with a Canada study permit and Germany too",
	}
	for _, text := range cases {
		assert.Equal(t, OutOfScope, c.Classify(text, Context{}), "text: %q", text)
	}
}

func TestClassifyOutOfScopeFallback(t *testing.T) {
	c := NewClassifier(true)

	for _, text := range []string{"what's the weather today", "write me a poem", "", "   "} {
		assert.Equal(t, OutOfScope, c.Classify(text, Context{}), "text: %q", text)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier(true)

	const text = "Documents for a Spain tourist visa?"
	first := c.Classify(text, Context{})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(text, Context{}))
	}
}

func TestKeywordListsAreDisjoint(t *testing.T) {
	for _, neg := range negativeTerms {
		for _, pos := range positiveTerms {
			assert.NotEqual(t, neg, pos)
		}
	}
}

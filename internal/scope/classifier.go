// Package scope decides what kind of message the user sent before anything
// is forwarded to the model backend: a greeting, a question about the
// assistant itself, a Schengen visa question, or something outside the
// assistant's remit.
package scope

import "strings"

type Verdict int

const (
	Greeting Verdict = iota
	CapabilityQuery
	InScope
	OutOfScope
)

func (v Verdict) String() string {
	switch v {
	case Greeting:
		return "greeting"
	case CapabilityQuery:
		return "capability_query"
	case InScope:
		return "in_scope"
	default:
		return "out_of_scope"
	}
}

// Context carries the conversation facts the classifier is allowed to see.
type Context struct {
	FirstUserMessage bool
}

type Classifier struct {
	// capabilityFirstOnly gates the capability-query short circuit to the
	// session's first user message; later occurrences fall through to the
	// keyword rules.
	capabilityFirstOnly bool
}

func NewClassifier(capabilityFirstOnly bool) *Classifier {
	return &Classifier{capabilityFirstOnly: capabilityFirstOnly}
}

// Classify maps message text to a verdict. The rule order is deliberate and
// must not be rearranged: greetings and capability questions short-circuit
// before any keyword matching, and excluded jurisdictions win over positive
// terms appearing in the same message.
func (c *Classifier) Classify(text string, ctx Context) Verdict {
	normalized := normalize(text)
	if normalized == "" {
		return OutOfScope
	}

	lettersOnly := stripNonLetters(normalized)

	if _, ok := greetingTokens[lettersOnly]; ok {
		return Greeting
	}

	if _, ok := capabilityPhrases[lettersOnly]; ok {
		if !c.capabilityFirstOnly || ctx.FirstUserMessage {
			return CapabilityQuery
		}
	}

	for _, term := range negativeTerms {
		if strings.Contains(normalized, term) {
			return OutOfScope
		}
	}

	if strings.Contains(normalized, "schengen") {
		return InScope
	}
	for _, term := range positiveTerms {
		if strings.Contains(normalized, term) {
			return InScope
		}
	}

	return OutOfScope
}

// normalize lower-cases, drops question marks, and collapses runs of
// whitespace to single spaces.
func normalize(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "?", "")
	return strings.Join(strings.Fields(s), " ")
}

// stripNonLetters keeps letters and spaces only, so "hey!!" and "who are
// you..." still match their tokens.
func stripNonLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

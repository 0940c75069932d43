package processor

import (
	"fmt"
	"strings"
)

// Kind names the outcome of classifying one answer
type Kind string

const (
	KindFavorable     Kind = "favorable"
	KindUndecided     Kind = "undecided"
	KindUnfavorable   Kind = "unfavorable"
	KindInvalidKeypad Kind = "invalid_keypad"
	KindUnclearVoice  Kind = "unclear_voice"
	KindNone          Kind = "none"
)

// Source names which input channel produced the answer
type Source string

const (
	SourceKeypad Source = "keypad"
	SourceSpeech Source = "speech"
	SourceNone   Source = "none"
)

const (
	scoreFavorable   = 3
	scoreUndecided   = 2
	scoreUnfavorable = 1
)

// Input is the raw interaction carried by a voice callback
type Input struct {
	Digits string
	Speech string
}

// HasInteraction reports whether the caller pressed a key or spoke
func (i Input) HasInteraction() bool {
	return i.Digits != "" || i.Speech != ""
}

// Classification is the preference derived from one answer. Preference and
// LoyaltyScore are nil when the answer could not be classified; invalid and
// unclear answers carry a label but no score.
type Classification struct {
	Kind         Kind
	Source       Source
	Preference   *string
	LoyaltyScore *int
	AnswerRaw    string
}

// Usable reports whether the classification can be stored on a call
func (c Classification) Usable() bool {
	return c.Preference != nil && c.LoyaltyScore != nil
}

// Classify maps keypad digits or recognized speech to a preference about
// candidate. Digits take precedence over speech.
//
// Speech matching is a lower-cased substring test checked in the order
// affirmative, negative, doubt. "no estoy seguro" is therefore unfavorable,
// and "si" also matches inside words such as "decisión".
func Classify(candidate string, in Input) Classification {
	switch {
	case in.Digits != "":
		return classifyDigits(candidate, in.Digits)
	case in.Speech != "":
		return classifySpeech(candidate, in.Speech)
	default:
		return Classification{Kind: KindNone, Source: SourceNone}
	}
}

func classifyDigits(candidate, digits string) Classification {
	c := Classification{Source: SourceKeypad, AnswerRaw: digits}
	switch digits {
	case "1":
		return scored(c, KindFavorable, candidate)
	case "2":
		return scored(c, KindUndecided, candidate)
	case "3":
		return scored(c, KindUnfavorable, candidate)
	default:
		label := "Respuesta inválida por teclado"
		c.Kind = KindInvalidKeypad
		c.Preference = &label
		return c
	}
}

func classifySpeech(candidate, speech string) Classification {
	c := Classification{Source: SourceSpeech, AnswerRaw: speech}
	normalized := strings.ToLower(speech)
	switch {
	case strings.Contains(normalized, "sí") || strings.Contains(normalized, "si"):
		return scored(c, KindFavorable, candidate)
	case strings.Contains(normalized, "no"):
		return scored(c, KindUnfavorable, candidate)
	case strings.Contains(normalized, "dudoso") || strings.Contains(normalized, "indecis"):
		return scored(c, KindUndecided, candidate)
	default:
		label := fmt.Sprintf("Respuesta de voz no clara: %s", speech)
		c.Kind = KindUnclearVoice
		c.Preference = &label
		return c
	}
}

func scored(c Classification, kind Kind, candidate string) Classification {
	var (
		label string
		score int
	)
	switch kind {
	case KindFavorable:
		label, score = fmt.Sprintf("A favor de %s", candidate), scoreFavorable
	case KindUndecided:
		label, score = fmt.Sprintf("Dudoso frente a %s", candidate), scoreUndecided
	case KindUnfavorable:
		label, score = fmt.Sprintf("En contra de %s", candidate), scoreUnfavorable
	}
	c.Kind = kind
	c.Preference = &label
	c.LoyaltyScore = &score
	return c
}

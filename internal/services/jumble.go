package services

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/dobromiryor/yum-sub000/internal/models"
)

// Jumble scrambles comment text for display: the whole string is
// lowercased, the letters of every space-separated word are shuffled,
// then the word order is shuffled, and the first rune of the result is
// uppercased. When the input admits more than one arrangement, the
// result is guaranteed to differ from the original text: a shuffle that
// lands on the original is redrawn. Inputs with a single possible
// arrangement (one character, "Aa", "a a") come back as that
// arrangement; empty and whitespace-only input comes back unchanged.
//
// The randomness source is injected so callers decide between a fresh
// scramble per render (production) and a fixed seed (tests).
func Jumble(content string, rnd *rand.Rand) string {
	if strings.TrimSpace(content) == "" {
		return content
	}

	lowered := strings.ToLower(content)
	rearrangeable := canRearrange(lowered)
	for {
		out := scramble(lowered, rnd)
		if out != content || !rearrangeable {
			return out
		}
	}
}

// RenderableContent is the read-time view of a comment's text: the
// stored content as-is, or its jumbled form when the comment is hidden.
// The stored field is never touched, so unhiding loses nothing.
func RenderableContent(c models.Comment, rnd *rand.Rand) string {
	if !c.IsHidden {
		return c.Content
	}
	return Jumble(c.Content, rnd)
}

func scramble(lowered string, rnd *rand.Rand) string {
	words := strings.Split(lowered, " ")
	for i, w := range words {
		words[i] = shuffleRunes(w, rnd)
	}
	rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	out := []rune(strings.Join(words, " "))
	out[0] = unicode.ToUpper(out[0])
	return string(out)
}

// canRearrange reports whether the lowercased input has more than one
// reachable arrangement. It does not: every word must be a run of one
// repeated rune (letter shuffles are identity) and all words must be
// equal (word shuffles are identity).
func canRearrange(lowered string) bool {
	words := strings.Split(lowered, " ")
	for _, w := range words {
		if w != words[0] {
			return true
		}
		runes := []rune(w)
		for _, r := range runes {
			if r != runes[0] {
				return true
			}
		}
	}
	return false
}

func shuffleRunes(s string, rnd *rand.Rand) string {
	r := []rune(s)
	rnd.Shuffle(len(r), func(i, j int) {
		r[i], r[j] = r[j], r[i]
	})
	return string(r)
}

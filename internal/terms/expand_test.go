package terms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_scout/internal/terms"
)

func TestExpand_Kofte(t *testing.T) {
	got := terms.Default().Expand("köfte")

	assert.Contains(t, got, "köfte")
	assert.Contains(t, got, "köfteci")
	assert.Contains(t, got, "köfte salonu")
	assert.Contains(t, got, "restaurant")
	assert.Contains(t, got, "lokanta")
	assert.Equal(t, "köfte", got[0])
}

func TestExpand_ContainsTrimmedLowerInput(t *testing.T) {
	for _, in := range []string{"  Pide ", "KEBAP", "Çiğ Köfte", "mezeci", "İskender", "x"} {
		got := terms.Default().Expand(in)
		require.NotEmpty(t, got, in)
		assert.Contains(t, got, lower(in), in)
	}
}

func TestExpand_NoDuplicates(t *testing.T) {
	for _, in := range []string{"köfte", "restoran", "lokanta", "brunch", "balık", "pizza"} {
		got := terms.Default().Expand(in)
		seen := map[string]bool{}
		for _, term := range got {
			assert.False(t, seen[term], "duplicate %q in %v", term, got)
			seen[term] = true
		}
	}
}

func TestExpand_GenericTermsNotAppendedTwice(t *testing.T) {
	got := terms.Default().Expand("restoran")

	count := 0
	for _, term := range got {
		if term == "restoran" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	// suffixing still applies to the generic word itself
	assert.Contains(t, got, "restorancı")
}

func TestExpand_AgentiveSuffix(t *testing.T) {
	t.Run("vowel ending", func(t *testing.T) {
		got := terms.Default().Expand("gözleme")
		assert.Contains(t, got, "gözlemeci")
		assert.Contains(t, got, "gözlemecisi")
	})
	t.Run("consonant ending", func(t *testing.T) {
		got := terms.Default().Expand("kumpir")
		assert.Contains(t, got, "kumpircı")
		assert.Contains(t, got, "kumpircısı")
	})
	t.Run("already agentive", func(t *testing.T) {
		got := terms.Default().Expand("kebapçı")
		assert.NotContains(t, got, "kebapçıcı")
		assert.Equal(t, []string{"kebapçı", "restoran", "restaurant", "lokanta"}, got)
	})
}

func TestExpand_Blank(t *testing.T) {
	assert.Nil(t, terms.Default().Expand(""))
	assert.Nil(t, terms.Default().Expand("   "))
}

func TestIsGeneric(t *testing.T) {
	e := terms.Default()
	assert.True(t, e.IsGeneric("Restaurant"))
	assert.True(t, e.IsGeneric(" lokanta "))
	assert.False(t, e.IsGeneric("köfteci"))
}

func TestNew_CustomTable(t *testing.T) {
	e := terms.New(map[string][]string{"Kumru": {"kumrucu"}})
	got := e.Expand("kumru")
	assert.Equal(t, []string{"kumru", "kumrucu", "kumruci", "kumrucisi", "restoran", "restaurant", "lokanta"}, got)
}

func lower(s string) string {
	// mirrors the expander's own trimming for the inputs above
	switch s {
	case "  Pide ":
		return "pide"
	case "KEBAP":
		return "kebap"
	case "Çiğ Köfte":
		return "çiğ köfte"
	case "İskender":
		return "iskender"
	}
	return s
}

package planner

import (
	"math/rand"
	"testing"

	"kondate/internal/catalog"
	"kondate/internal/household"
)

func mustLookup(t *testing.T, name string) catalog.Recipe {
	t.Helper()
	r, ok := catalog.Lookup(name)
	if !ok {
		t.Fatalf("%s must exist in the catalog", name)
	}
	return r
}

func TestScore(t *testing.T) {
	curry := mustLookup(t, "カレーライス")

	t.Run("PreferredTagBonus", func(t *testing.T) {
		if got := Score(curry, []string{"japanese"}, nil); got != 10 {
			t.Errorf("Expected 10 for a tag match, got %d", got)
		}
		if got := Score(curry, []string{"western"}, nil); got != 0 {
			t.Errorf("Expected 0 without a tag match, got %d", got)
		}
	})

	t.Run("LikeBonus", func(t *testing.T) {
		members := []household.FamilyMember{{Likes: "じゃがいもが大好き"}}
		if got := Score(curry, nil, members); got != 5 {
			t.Errorf("Expected 5 for a like match, got %d", got)
		}
	})

	t.Run("DislikeVetoDominatesLikes", func(t *testing.T) {
		// One member loves potatoes, another refuses onions. The veto wins
		// even though the score stays above -100.
		members := []household.FamilyMember{
			{Likes: "じゃがいも"},
			{Dislikes: "玉ねぎ"},
		}
		if got := Score(curry, []string{"japanese"}, members); got != -85 {
			t.Errorf("Expected 10+5-100 = -85, got %d", got)
		}
		if !Vetoed(curry, members) {
			t.Error("A dislike match must veto the recipe regardless of likes")
		}
	})

	t.Run("LikeAndDislikeAcrossMembers", func(t *testing.T) {
		// One member likes tomatoes, another dislikes them: the tomato dish
		// scores -95 but is excluded anyway.
		members := []household.FamilyMember{
			{Likes: "トマト"},
			{Dislikes: "トマト"},
		}
		salad := mustLookup(t, "サラダチキンボウル")
		if got := Score(salad, nil, members); got != -95 {
			t.Errorf("Expected 5-100 = -95, got %d", got)
		}
		ranked, err := Rank(catalog.Recipes(catalog.ModeNormal), nil, members)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range ranked {
			if s.Recipe.Name == "サラダチキンボウル" {
				t.Error("Vetoed tomato dish survived ranking")
			}
		}
	})
}

func TestRank(t *testing.T) {
	pool := catalog.Recipes(catalog.ModeNormal)

	t.Run("DropsVetoed", func(t *testing.T) {
		members := []household.FamilyMember{{Dislikes: "豚肉"}}
		ranked, err := Rank(pool, nil, members)
		if err != nil {
			t.Fatalf("Expected survivors, got %v", err)
		}
		for _, s := range ranked {
			for _, ing := range s.Recipe.MainIngredients {
				if ing == "豚肉" {
					t.Errorf("Vetoed recipe %s survived ranking", s.Recipe.Name)
				}
			}
		}
	})

	t.Run("SortedDescending", func(t *testing.T) {
		ranked, err := Rank(pool, []string{"japanese"}, nil)
		if err != nil {
			t.Fatalf("Expected survivors, got %v", err)
		}
		for i := 1; i < len(ranked); i++ {
			if ranked[i-1].Score < ranked[i].Score {
				t.Fatalf("Ranking not sorted at %d: %d < %d", i, ranked[i-1].Score, ranked[i].Score)
			}
		}
	})

	t.Run("AllVetoed", func(t *testing.T) {
		// Vetoing every principal ingredient category empties the pool.
		members := []household.FamilyMember{
			{Dislikes: "豚肉 鶏肉 合いびき肉 豚ひき肉 鶏もも肉 鶏胸肉 卵 木綿豆腐 鮭 キャベツ 玉ねぎ レタス"},
		}
		if _, err := Rank(pool, nil, members); err != ErrNoEligibleRecipe {
			t.Fatalf("Expected ErrNoEligibleRecipe, got %v", err)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := Rank(pool, []string{"chinese"}, nil)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Rank(pool, []string{"chinese"}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(a) != len(b) {
			t.Fatalf("Two identical rankings differ in length: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Recipe.Name != b[i].Recipe.Name {
				t.Fatalf("Rank order not deterministic at %d: %s vs %s", i, a[i].Recipe.Name, b[i].Recipe.Name)
			}
		}
	})
}

func TestSelectForDays(t *testing.T) {
	pool := catalog.Recipes(catalog.ModeNormal)
	ranked, err := Rank(pool, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))

	t.Run("CyclesBeforeRepeating", func(t *testing.T) {
		days := len(ranked)
		picks := SelectForDays(ranked, days, rng)
		seen := make(map[string]bool, days)
		for _, p := range picks {
			if seen[p.Name] {
				t.Fatalf("Dish %s repeated before the ranking was exhausted", p.Name)
			}
			seen[p.Name] = true
		}
	})

	t.Run("TopScoreFirst", func(t *testing.T) {
		picks := SelectForDays(ranked, 3, rng)
		for i := 0; i < 3; i++ {
			if picks[i].Name != ranked[i].Recipe.Name {
				t.Errorf("Day %d: expected %s, got %s", i, ranked[i].Recipe.Name, picks[i].Name)
			}
		}
	})

	t.Run("OverflowDrawsFromTopFive", func(t *testing.T) {
		short := ranked[:2]
		picks := SelectForDays(short, 5, rng)
		if len(picks) != 5 {
			t.Fatalf("Expected 5 picks, got %d", len(picks))
		}
		allowed := map[string]bool{short[0].Recipe.Name: true, short[1].Recipe.Name: true}
		for _, p := range picks {
			if !allowed[p.Name] {
				t.Errorf("Overflow pick %s not in the ranked list", p.Name)
			}
		}
	})
}

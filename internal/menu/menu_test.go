package menu

import (
	"testing"
)

func findDish(t *testing.T, m FullMenu, cat Category) DishItem {
	t.Helper()
	for _, d := range m.Dishes {
		if d.Category == cat {
			return d
		}
	}
	t.Fatalf("menu has no %s course", cat)
	return DishItem{}
}

func hasCategory(m FullMenu, cat Category) bool {
	for _, d := range m.Dishes {
		if d.Category == cat {
			return true
		}
	}
	return false
}

func TestComposeRiceMainOmitsStaple(t *testing.T) {
	m := Compose("カレーライス", []Ingredient{{Name: "米", Qty: 600, Unit: "g"}}, 4)

	if hasCategory(m, CategoryStaple) {
		t.Error("Rice-based main must not get a separate staple course")
	}

	side := findDish(t, m, CategorySide)
	if side.Name != "ほうれん草のおひたし" {
		t.Errorf("Expected spinach side, got %q", side.Name)
	}
	soup := findDish(t, m, CategorySoup)
	if soup.Name != "味噌汁" {
		t.Errorf("Expected miso soup, got %q", soup.Name)
	}

	// size 4: half a block of tofu per person, rounded up
	for _, ing := range soup.Ingredients {
		if ing.Name == "木綿豆腐" && ing.Qty != 2 {
			t.Errorf("Expected 2 丁 of tofu for size 4, got %g", ing.Qty)
		}
		if ing.Name == "味噌" && ing.Qty != 60 {
			t.Errorf("Expected 60g of miso for size 4, got %g", ing.Qty)
		}
	}
}

func TestComposeWesternMain(t *testing.T) {
	m := Compose("ハンバーグ", nil, 2)

	staple := findDish(t, m, CategoryStaple)
	if staple.Name != "パン" {
		t.Errorf("Expected bread staple, got %q", staple.Name)
	}
	if staple.Ingredients[0].Qty != 2 {
		t.Errorf("Expected 2 pieces of bread for size 2, got %g", staple.Ingredients[0].Qty)
	}

	side := findDish(t, m, CategorySide)
	if side.Name != "グリーンサラダ" {
		t.Errorf("Expected green salad, got %q", side.Name)
	}
	for _, ing := range side.Ingredients {
		// 0.25 lettuce per person rounds up to a whole head
		if ing.Name == "レタス" && ing.Qty != 1 {
			t.Errorf("Expected 1 head of lettuce for size 2, got %g", ing.Qty)
		}
	}

	soup := findDish(t, m, CategorySoup)
	if soup.Name != "コンソメスープ" {
		t.Errorf("Expected consommé, got %q", soup.Name)
	}
}

func TestComposeNoodleMainOmitsStaple(t *testing.T) {
	m := Compose("パスタカルボナーラ", nil, 3)

	if hasCategory(m, CategoryStaple) {
		t.Error("Noodle main must not get a staple course")
	}
	// カルボナーラ is also Western, so sides follow the Western branch.
	if findDish(t, m, CategorySide).Name != "グリーンサラダ" {
		t.Error("Expected the Western side for carbonara")
	}
}

func TestComposeDefaultJapaneseSet(t *testing.T) {
	m := Compose("肉じゃが", nil, 1)

	if findDish(t, m, CategoryStaple).Name != "ご飯" {
		t.Error("Expected rice staple for a Japanese main")
	}
	staple := findDish(t, m, CategoryStaple)
	if staple.Ingredients[0].Qty != 150 {
		t.Errorf("Expected 150g of rice for one person, got %g", staple.Ingredients[0].Qty)
	}
	main := findDish(t, m, CategoryMain)
	if main.Name != "肉じゃが" {
		t.Errorf("Main course should carry the dish name, got %q", main.Name)
	}
}

func TestAggregateSumsByNameAndUnit(t *testing.T) {
	menus := []FullMenu{
		{Dishes: []DishItem{{Category: CategoryMain, Name: "a", Ingredients: []Ingredient{
			{Name: "玉ねぎ", Qty: 1, Unit: "個"},
			{Name: "米", Qty: 300, Unit: "g"},
		}}}},
		{Dishes: []DishItem{{Category: CategoryMain, Name: "b", Ingredients: []Ingredient{
			{Name: "玉ねぎ", Qty: 2, Unit: "個"},
			{Name: "玉ねぎ", Qty: 50, Unit: "g"}, // different unit stays separate
		}}}},
	}

	got := Aggregate(menus)

	want := []Ingredient{
		{Name: "玉ねぎ", Qty: 3, Unit: "個"},
		{Name: "米", Qty: 300, Unit: "g"},
		{Name: "玉ねぎ", Qty: 50, Unit: "g"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Line %d: expected %+v, got %+v", i, w, got[i])
		}
	}
}

func TestAggregateRoundsFractions(t *testing.T) {
	menus := []FullMenu{
		{Dishes: []DishItem{{Ingredients: []Ingredient{{Name: "にんじん", Qty: 0.3, Unit: "本"}}}}},
		{Dishes: []DishItem{{Ingredients: []Ingredient{{Name: "にんじん", Qty: 0.3, Unit: "本"}}}}},
	}
	got := Aggregate(menus)
	if len(got) != 1 || got[0].Qty != 1 {
		t.Fatalf("Expected 0.6 to round to 1, got %+v", got)
	}
}

func TestDecodeIngredients(t *testing.T) {
	t.Run("StructuredMenu", func(t *testing.T) {
		raw := []byte(`{"dishes":[{"category":"主菜","name":"カレーライス","ingredients":[{"name":"米","qty":300,"unit":"g"}]}]}`)
		m, err := DecodeIngredients(raw, "カレーライス")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(m.Dishes) != 1 || m.Dishes[0].Category != CategoryMain {
			t.Errorf("Unexpected decoded menu: %+v", m)
		}
	})

	t.Run("LegacyFlatArray", func(t *testing.T) {
		raw := []byte(`[{"name":"米","qty":300,"unit":"g"},{"name":"玉ねぎ","qty":1,"unit":"個"}]`)
		m, err := DecodeIngredients(raw, "チャーハン")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		main, ok := m.MainDish()
		if !ok {
			t.Fatal("Upgraded menu must have a main course")
		}
		if main.Name != "チャーハン" {
			t.Errorf("Expected the dish name on the main course, got %q", main.Name)
		}
		if len(main.Ingredients) != 2 {
			t.Errorf("Expected 2 ingredients, got %d", len(main.Ingredients))
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := DecodeIngredients([]byte(`"nope"`), "x"); err == nil {
			t.Fatal("Expected an error for malformed data, got nil")
		}
	})
}

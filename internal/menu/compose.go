package menu

import "math"

// Dish-name allow-lists driving course composition. A main dish absent from
// every list falls through to the Japanese-style branch of each rule.
var (
	riceDishes = []string{
		"オムライス", "チャーハン", "カレーライス", "ドリア",
		"親子丼", "牛丼", "天丼", "豚キムチ",
	}
	westernDishes = []string{
		"ハンバーグ", "グラタン", "ステーキ", "パスタカルボナーラ", "オムライス",
	}
	noodleDishes = []string{"パスタカルボナーラ"}
)

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func ceilPer(size int, perPerson float64) float64 {
	return math.Ceil(float64(size) * perPerson)
}

// Compose expands a main dish into a full multi-course menu for the given
// household size. Rice and noodle mains omit the staple course entirely;
// Western-style mains get bread, a green salad and consommé, everything else
// gets rice, simmered spinach and miso soup. Every dish name produces a
// valid menu; there is no failure path.
func Compose(mainDish string, mainIngredients []Ingredient, size int) FullMenu {
	isRice := contains(riceDishes, mainDish)
	isWestern := contains(westernDishes, mainDish)
	isNoodle := contains(noodleDishes, mainDish)

	var dishes []DishItem

	if !isRice && !isNoodle {
		if isWestern {
			dishes = append(dishes, DishItem{
				Category: CategoryStaple,
				Name:     "パン",
				Ingredients: []Ingredient{
					{Name: "パン", Qty: float64(size), Unit: "個"},
				},
			})
		} else {
			dishes = append(dishes, DishItem{
				Category: CategoryStaple,
				Name:     "ご飯",
				Ingredients: []Ingredient{
					{Name: "米", Qty: float64(size) * 150, Unit: "g"},
				},
			})
		}
	}

	dishes = append(dishes, DishItem{
		Category:    CategoryMain,
		Name:        mainDish,
		Ingredients: mainIngredients,
	})

	if isWestern {
		dishes = append(dishes, DishItem{
			Category: CategorySide,
			Name:     "グリーンサラダ",
			Ingredients: []Ingredient{
				{Name: "レタス", Qty: ceilPer(size, 0.25), Unit: "個"},
				{Name: "トマト", Qty: ceilPer(size, 0.5), Unit: "個"},
				{Name: "きゅうり", Qty: ceilPer(size, 0.3), Unit: "本"},
				{Name: "ドレッシング", Qty: float64(size) * 15, Unit: "ml"},
			},
		})
	} else {
		dishes = append(dishes, DishItem{
			Category: CategorySide,
			Name:     "ほうれん草のおひたし",
			Ingredients: []Ingredient{
				{Name: "ほうれん草", Qty: ceilPer(size, 0.5), Unit: "束"},
				{Name: "かつお節", Qty: float64(size) * 2, Unit: "g"},
				{Name: "醤油", Qty: float64(size) * 5, Unit: "ml"},
			},
		})
	}

	if isWestern {
		dishes = append(dishes, DishItem{
			Category: CategorySoup,
			Name:     "コンソメスープ",
			Ingredients: []Ingredient{
				{Name: "コンソメ", Qty: ceilPer(size, 0.5), Unit: "個"},
				{Name: "玉ねぎ", Qty: ceilPer(size, 0.3), Unit: "個"},
				{Name: "にんじん", Qty: ceilPer(size, 0.3), Unit: "本"},
			},
		})
	} else {
		dishes = append(dishes, DishItem{
			Category: CategorySoup,
			Name:     "味噌汁",
			Ingredients: []Ingredient{
				{Name: "味噌", Qty: float64(size) * 15, Unit: "g"},
				{Name: "木綿豆腐", Qty: ceilPer(size, 0.5), Unit: "丁"},
				{Name: "わかめ", Qty: float64(size) * 5, Unit: "g"},
			},
		})
	}

	return FullMenu{Dishes: dishes}
}

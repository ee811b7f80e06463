package catalog

// Pool membership tables. The diet pool borrows the normal dishes tagged
// "healthy"; the muscle pool borrows only the dishes in muscleBorrow.
var pools = map[Mode][]string{
	ModeNormal: {
		"カレーライス", "ハンバーグ", "餃子", "麻婆豆腐", "オムライス",
		"チャーハン", "シチュー", "焼き魚定食", "サラダチキンボウル",
		"豚キムチ", "親子丼", "パスタカルボナーラ", "鶏の唐揚げ", "野菜炒め",
	},
	ModeDiet: {
		"豆腐ハンバーグ", "鶏胸肉のソテー", "野菜たっぷり鍋", "蒸し鶏のサラダ",
		"白身魚の蒸し物", "こんにゃくステーキ",
		"焼き魚定食", "サラダチキンボウル", "野菜炒め",
	},
	ModeMuscle: {
		"鶏胸肉のステーキ", "サーモンのグリル", "牛赤身肉のステーキ",
		"プロテインオムレツ", "まぐろの刺身", "豚ヒレ肉のソテー",
		"卵とブロッコリー炒め",
		"鶏の唐揚げ", "焼き魚定食",
	},
}

var muscleBorrow = map[string]bool{
	"鶏の唐揚げ": true,
	"焼き魚定食": true,
}

var normalRecipes = []Recipe{
	{
		Name:            "カレーライス",
		Tags:            []string{"japanese"},
		MainIngredients: []string{"玉ねぎ", "じゃがいも", "にんじん", "豚肉"},
		Items: []Item{
			{Name: "玉ねぎ", Per: 1, Unit: "個"},
			{Name: "じゃがいも", Per: 2, Unit: "個"},
			{Name: "にんじん", Per: 1, Unit: "本"},
			{Name: "豚肉", Per: 150, Unit: "g"},
			{Name: "カレールー", Per: 25, Unit: "g"},
			{Name: "米", Per: 150, Unit: "g"},
		},
	},
	{
		Name:            "ハンバーグ",
		Tags:            []string{"western"},
		MainIngredients: []string{"合いびき肉", "玉ねぎ", "卵"},
		Items: []Item{
			{Name: "合いびき肉", Per: 100, Unit: "g"},
			{Name: "玉ねぎ", Per: 0.5, Unit: "個", Ceil: true},
			{Name: "パン粉", Per: 10, Unit: "g"},
			{Name: "卵", Per: 0.3, Unit: "個", Ceil: true},
			{Name: "レタス", Per: 0.25, Unit: "個", Ceil: true},
		},
	},
	{
		Name:            "餃子",
		Tags:            []string{"chinese"},
		MainIngredients: []string{"豚ひき肉", "キャベツ", "ニラ"},
		Items: []Item{
			{Name: "豚ひき肉", Per: 100, Unit: "g"},
			{Name: "キャベツ", Per: 0.25, Unit: "個", Ceil: true},
			{Name: "ニラ", Per: 0.5, Unit: "束", Ceil: true},
			{Name: "餃子の皮", Per: 12, Unit: "枚"},
			{Name: "ごま油", Per: 5, Unit: "ml"},
		},
	},
	{
		Name:            "麻婆豆腐",
		Tags:            []string{"chinese", "spicy"},
		MainIngredients: []string{"木綿豆腐", "豚ひき肉", "長ねぎ", "豆板醤"},
		Items: []Item{
			{Name: "木綿豆腐", Per: 1, Unit: "丁"},
			{Name: "豚ひき肉", Per: 80, Unit: "g"},
			{Name: "長ねぎ", Per: 0.5, Unit: "本", Ceil: true},
			{Name: "にんにく", Per: 0.5, Unit: "片", Ceil: true},
			{Name: "豆板醤", Per: 5, Unit: "g"},
		},
	},
	{
		Name:            "オムライス",
		Tags:            []string{"western"},
		MainIngredients: []string{"卵", "鶏肉", "玉ねぎ"},
		Items: []Item{
			{Name: "卵", Per: 2, Unit: "個"},
			{Name: "米", Per: 150, Unit: "g"},
			{Name: "鶏肉", Per: 80, Unit: "g"},
			{Name: "玉ねぎ", Per: 0.3, Unit: "個", Ceil: true},
			{Name: "ケチャップ", Per: 30, Unit: "g"},
		},
	},
	{
		Name:            "チャーハン",
		Tags:            []string{"chinese"},
		MainIngredients: []string{"卵", "長ねぎ", "ハム"},
		Items: []Item{
			{Name: "米", Per: 150, Unit: "g"},
			{Name: "卵", Per: 1, Unit: "個"},
			{Name: "長ねぎ", Per: 0.5, Unit: "本", Ceil: true},
			{Name: "ハム", Per: 50, Unit: "g"},
			{Name: "ごま油", Per: 10, Unit: "ml"},
		},
	},
	{
		Name:            "シチュー",
		Tags:            []string{"western"},
		MainIngredients: []string{"鶏肉", "じゃがいも", "にんじん", "玉ねぎ"},
		Items: []Item{
			{Name: "鶏肉", Per: 120, Unit: "g"},
			{Name: "じゃがいも", Per: 2, Unit: "個"},
			{Name: "にんじん", Per: 1, Unit: "本"},
			{Name: "玉ねぎ", Per: 1, Unit: "個"},
			{Name: "シチューのルー", Per: 25, Unit: "g"},
			{Name: "牛乳", Per: 100, Unit: "ml"},
		},
	},
	{
		Name:            "焼き魚定食",
		Tags:            []string{"japanese", "healthy"},
		MainIngredients: []string{"鮭", "大根", "ほうれん草"},
		Items: []Item{
			{Name: "鮭", Per: 1, Unit: "切れ"},
			{Name: "大根", Per: 0.3, Unit: "本", Ceil: true},
			{Name: "ほうれん草", Per: 0.5, Unit: "束", Ceil: true},
			{Name: "米", Per: 150, Unit: "g"},
			{Name: "味噌", Per: 15, Unit: "g"},
		},
	},
	{
		Name:            "サラダチキンボウル",
		Tags:            []string{"healthy"},
		MainIngredients: []string{"鶏胸肉", "レタス", "トマト", "アボカド"},
		Items: []Item{
			{Name: "鶏胸肉", Per: 120, Unit: "g"},
			{Name: "レタス", Per: 0.3, Unit: "個", Ceil: true},
			{Name: "トマト", Per: 1, Unit: "個"},
			{Name: "アボカド", Per: 0.5, Unit: "個", Ceil: true},
			{Name: "オリーブオイル", Per: 10, Unit: "ml"},
		},
	},
	{
		Name:            "豚キムチ",
		Tags:            []string{"spicy"},
		MainIngredients: []string{"豚肉", "キムチ", "玉ねぎ"},
		Items: []Item{
			{Name: "豚肉", Per: 150, Unit: "g"},
			{Name: "キムチ", Per: 100, Unit: "g"},
			{Name: "玉ねぎ", Per: 0.5, Unit: "個", Ceil: true},
			{Name: "ごま油", Per: 10, Unit: "ml"},
			{Name: "米", Per: 150, Unit: "g"},
		},
	},
	{
		Name:            "親子丼",
		Tags:            []string{"japanese"},
		MainIngredients: []string{"鶏肉", "卵", "玉ねぎ"},
		Items: []Item{
			{Name: "鶏肉", Per: 100, Unit: "g"},
			{Name: "卵", Per: 2, Unit: "個"},
			{Name: "玉ねぎ", Per: 0.5, Unit: "個", Ceil: true},
			{Name: "米", Per: 150, Unit: "g"},
			{Name: "みりん", Per: 15, Unit: "ml"},
		},
	},
	{
		Name:            "パスタカルボナーラ",
		Tags:            []string{"western"},
		MainIngredients: []string{"パスタ", "ベーコン", "卵", "チーズ"},
		Items: []Item{
			{Name: "パスタ", Per: 100, Unit: "g"},
			{Name: "ベーコン", Per: 50, Unit: "g"},
			{Name: "卵", Per: 1, Unit: "個"},
			{Name: "パルメザンチーズ", Per: 20, Unit: "g"},
			{Name: "にんにく", Per: 0.3, Unit: "片", Ceil: true},
		},
	},
	{
		Name:            "鶏の唐揚げ",
		Tags:            []string{"japanese"},
		MainIngredients: []string{"鶏もも肉", "にんにく", "生姜"},
		Items: []Item{
			{Name: "鶏もも肉", Per: 150, Unit: "g"},
			{Name: "にんにく", Per: 0.5, Unit: "片", Ceil: true},
			{Name: "生姜", Per: 0.3, Unit: "片", Ceil: true},
			{Name: "片栗粉", Per: 30, Unit: "g"},
			{Name: "レタス", Per: 0.25, Unit: "個", Ceil: true},
		},
	},
	{
		Name:            "野菜炒め",
		Tags:            []string{"chinese", "healthy"},
		MainIngredients: []string{"キャベツ", "にんじん", "もやし", "豚肉"},
		Items: []Item{
			{Name: "キャベツ", Per: 0.25, Unit: "個", Ceil: true},
			{Name: "にんじん", Per: 0.5, Unit: "本", Ceil: true},
			{Name: "もやし", Per: 100, Unit: "g"},
			{Name: "豚肉", Per: 100, Unit: "g"},
			{Name: "ごま油", Per: 10, Unit: "ml"},
		},
	},
}

var dietRecipes = []Recipe{
	{
		Name:            "豆腐ハンバーグ",
		Tags:            []string{"healthy"},
		MainIngredients: []string{"木綿豆腐", "鶏ひき肉", "玉ねぎ"},
		Items: []Item{
			{Name: "木綿豆腐", Per: 0.5, Unit: "丁"},
			{Name: "鶏ひき肉", Per: 80, Unit: "g"},
			{Name: "玉ねぎ", Per: 0.3, Unit: "個", Ceil: true},
			{Name: "パン粉", Per: 10, Unit: "g"},
			{Name: "レタス", Per: 0.3, Unit: "個", Ceil: true},
		},
	},
	{
		Name:            "鶏胸肉のソテー",
		Tags:            []string{"healthy"},
		MainIngredients: []string{"鶏胸肉", "ブロッコリー", "トマト"},
		Items: []Item{
			{Name: "鶏胸肉", Per: 100, Unit: "g"},
			{Name: "ブロッコリー", Per: 0.3, Unit: "株", Ceil: true},
			{Name: "トマト", Per: 1, Unit: "個"},
			{Name: "オリーブオイル", Per: 5, Unit: "ml"},
			{Name: "レモン", Per: 0.3, Unit: "個", Ceil: true},
		},
	},
	{
		Name:            "野菜たっぷり鍋",
		Tags:            []string{"healthy", "japanese"},
		MainIngredients: []string{"白菜", "豆腐", "しいたけ", "鶏肉"},
		Items: []Item{
			{Name: "白菜", Per: 0.25, Unit: "個", Ceil: true},
			{Name: "木綿豆腐", Per: 0.5, Unit: "丁"},
			{Name: "しいたけ", Per: 3, Unit: "個"},
			{Name: "鶏もも肉", Per: 80, Unit: "g"},
			{Name: "ポン酢", Per: 30, Unit: "ml"},
		},
	},
	{
		Name:            "蒸し鶏のサラダ",
		Tags:            []string{"healthy"},
		MainIngredients: []string{"鶏胸肉", "レタス", "トマト", "きゅうり"},
		Items: []Item{
			{Name: "鶏胸肉", Per: 100, Unit: "g"},
			{Name: "レタス", Per: 0.3, Unit: "個", Ceil: true},
			{Name: "トマト", Per: 1, Unit: "個"},
			{Name: "きゅうり", Per: 1, Unit: "本"},
			{Name: "ドレッシング", Per: 20, Unit: "ml"},
		},
	},
	{
		Name:            "白身魚の蒸し物",
		Tags:            []string{"healthy", "japanese"},
		MainIngredients: []string{"白身魚", "野菜"},
		Items: []Item{
			{Name: "白身魚", Per: 1, Unit: "切れ"},
			{Name: "ほうれん草", Per: 0.5, Unit: "束", Ceil: true},
			{Name: "えのき", Per: 50, Unit: "g"},
			{Name: "ポン酢", Per: 20, Unit: "ml"},
			{Name: "米", Per: 100, Unit: "g"},
		},
	},
	{
		Name:            "こんにゃくステーキ",
		Tags:            []string{"healthy"},
		MainIngredients: []string{"こんにゃく", "ピーマン"},
		Items: []Item{
			{Name: "こんにゃく", Per: 1, Unit: "枚"},
			{Name: "ピーマン", Per: 2, Unit: "個"},
			{Name: "にんにく", Per: 0.3, Unit: "片", Ceil: true},
			{Name: "醤油", Per: 10, Unit: "ml"},
			{Name: "米", Per: 100, Unit: "g"},
		},
	},
}

var muscleRecipes = []Recipe{
	{
		Name:            "鶏胸肉のステーキ",
		Tags:            []string{"healthy"},
		MainIngredients: []string{"鶏胸肉", "ブロッコリー"},
		Items: []Item{
			{Name: "鶏胸肉", Per: 200, Unit: "g"},
			{Name: "ブロッコリー", Per: 0.5, Unit: "株", Ceil: true},
			{Name: "オリーブオイル", Per: 10, Unit: "ml"},
			{Name: "にんにく", Per: 0.5, Unit: "片", Ceil: true},
			{Name: "米", Per: 180, Unit: "g"},
		},
	},
	{
		Name:            "サーモンのグリル",
		Tags:            []string{"healthy"},
		MainIngredients: []string{"サーモン", "アスパラガス"},
		Items: []Item{
			{Name: "サーモン", Per: 2, Unit: "切れ"},
			{Name: "アスパラガス", Per: 3, Unit: "本"},
			{Name: "レモン", Per: 0.3, Unit: "個", Ceil: true},
			{Name: "オリーブオイル", Per: 10, Unit: "ml"},
			{Name: "米", Per: 180, Unit: "g"},
		},
	},
	{
		Name:            "牛赤身肉のステーキ",
		Tags:            []string{"western"},
		MainIngredients: []string{"牛赤身肉", "ブロッコリー"},
		Items: []Item{
			{Name: "牛赤身肉", Per: 180, Unit: "g"},
			{Name: "ブロッコリー", Per: 0.5, Unit: "株", Ceil: true},
			{Name: "にんにく", Per: 0.5, Unit: "片", Ceil: true},
			{Name: "オリーブオイル", Per: 10, Unit: "ml"},
			{Name: "米", Per: 180, Unit: "g"},
		},
	},
	{
		Name:            "プロテインオムレツ",
		Tags:            []string{"western"},
		MainIngredients: []string{"卵", "鶏胸肉", "チーズ"},
		Items: []Item{
			{Name: "卵", Per: 3, Unit: "個"},
			{Name: "鶏胸肉", Per: 80, Unit: "g"},
			{Name: "チーズ", Per: 30, Unit: "g"},
			{Name: "トマト", Per: 1, Unit: "個"},
			{Name: "パン", Per: 1, Unit: "枚"},
		},
	},
	{
		Name:            "まぐろの刺身",
		Tags:            []string{"japanese"},
		MainIngredients: []string{"まぐろ", "卵"},
		Items: []Item{
			{Name: "まぐろ", Per: 150, Unit: "g"},
			{Name: "卵", Per: 2, Unit: "個"},
			{Name: "アボカド", Per: 0.5, Unit: "個", Ceil: true},
			{Name: "醤油", Per: 15, Unit: "ml"},
			{Name: "米", Per: 180, Unit: "g"},
		},
	},
	{
		Name:            "豚ヒレ肉のソテー",
		Tags:            []string{"western"},
		MainIngredients: []string{"豚ヒレ肉", "ほうれん草"},
		Items: []Item{
			{Name: "豚ヒレ肉", Per: 150, Unit: "g"},
			{Name: "ほうれん草", Per: 0.5, Unit: "束", Ceil: true},
			{Name: "にんにく", Per: 0.5, Unit: "片", Ceil: true},
			{Name: "オリーブオイル", Per: 10, Unit: "ml"},
			{Name: "米", Per: 180, Unit: "g"},
		},
	},
	{
		Name:            "卵とブロッコリー炒め",
		Tags:            []string{"healthy", "chinese"},
		MainIngredients: []string{"卵", "ブロッコリー", "鶏胸肉"},
		Items: []Item{
			{Name: "卵", Per: 3, Unit: "個"},
			{Name: "ブロッコリー", Per: 0.5, Unit: "株", Ceil: true},
			{Name: "鶏胸肉", Per: 120, Unit: "g"},
			{Name: "ごま油", Per: 10, Unit: "ml"},
			{Name: "米", Per: 180, Unit: "g"},
		},
	},
}

package i18n

import "droscher.com/Umami/pkg/model"

// Table texts are go templates. KeyShowSake takes .Count.
type Table map[Key]string

var english = Table{
	KeyHome:                "Home",
	KeyShop:                "Shop",
	KeyMySake:              "My Sake",
	KeyMore:                "More",
	KeySearchAnySake:       "Search any sake",
	KeyBestOffers:          "Best offers for you",
	KeyBestsellers:         "Bestsellers in Japan",
	KeyPriceDrops:          "Price drops",
	KeyHighlyRated:         "Highly rated",
	KeySort:                "Sort",
	KeyFilter:              "Filter",
	KeyShowSake:            "Show {{.Count}} sake",
	KeyClear:               "Clear",
	KeyType:                "Type",
	KeyRating:              "Rating",
	KeyPrice:               "Price",
	KeyOnlyShowsOffers:     "Only shows offers",
	KeyPrefecture:          "Prefecture",
	KeyRiceVariety:         "Rice Variety",
	KeyShowAll:             "Show all",
	KeyExploreBreweries:    "Explore Sake Breweries",
	KeyFoodAndSake:         "Food & Sake",
	KeySettings:            "Settings",
	KeyFavorites:           "Favorites",
	KeyNoFavorites:         "No favorites yet",
	KeySakeTried:           "Sake Tried",
	KeyWishlist:            "Wishlist",
	KeyTasteProfile:        "Your taste profile",
	KeyDetails:             "Details",
	KeyFlavorProfile:       "Flavor Profile",
	KeyAbout:               "About",
	KeyServingTemperature:  "Serving Temperature",
	KeyRecommendedPairings: "Recommended Food Pairings",
	KeyReviews:             "Reviews",
	KeySeeAll:              "See all",
	KeySweetness:           "Sweetness",
	KeyAcidity:             "Acidity",
	KeyBody:                "Body",
	KeyUmami:               "Umami",
	KeyAroma:               "Aroma",
	KeyEstablished:         "Established",
	KeyLanguage:            "Language",
	KeySearch:              "Search",
	KeyDone:                "Done",
	KeyCancel:              "Cancel",
	KeySave:                "Save",
	KeyLoading:             "Loading...",
	KeyErrorLoading:        "Could not load sake. Check your connection.",
	KeyRetry:               "Retry",
}

var japanese = Table{
	KeyHome:                "ホーム",
	KeyShop:                "ショップ",
	KeyMySake:              "マイ日本酒",
	KeyMore:                "もっと見る",
	KeySearchAnySake:       "日本酒を検索",
	KeyBestOffers:          "おすすめのオファー",
	KeyBestsellers:         "日本のベストセラー",
	KeyPriceDrops:          "値下げ商品",
	KeyHighlyRated:         "高評価",
	KeySort:                "並び替え",
	KeyFilter:              "フィルター",
	KeyShowSake:            "{{.Count}}件の日本酒を表示",
	KeyClear:               "クリア",
	KeyType:                "タイプ",
	KeyRating:              "評価",
	KeyPrice:               "価格",
	KeyOnlyShowsOffers:     "オファーのみ表示",
	KeyPrefecture:          "都道府県",
	KeyRiceVariety:         "米の品種",
	KeyShowAll:             "すべて表示",
	KeyExploreBreweries:    "酒蔵を探索",
	KeyFoodAndSake:         "料理と日本酒",
	KeySettings:            "設定",
	KeyFavorites:           "お気に入り",
	KeyNoFavorites:         "お気に入りはまだありません",
	KeySakeTried:           "試した日本酒",
	KeyWishlist:            "ウィッシュリスト",
	KeyTasteProfile:        "あなたの味覚プロファイル",
	KeyDetails:             "詳細",
	KeyFlavorProfile:       "フレーバープロファイル",
	KeyAbout:               "について",
	KeyServingTemperature:  "提供温度",
	KeyRecommendedPairings: "おすすめの料理ペアリング",
	KeyReviews:             "レビュー",
	KeySeeAll:              "すべて見る",
	KeySweetness:           "甘味",
	KeyAcidity:             "酸味",
	KeyBody:                "ボディ",
	KeyUmami:               "旨味",
	KeyAroma:               "香り",
	KeyEstablished:         "創業",
	KeyLanguage:            "言語",
	KeySearch:              "検索",
	KeyDone:                "完了",
	KeyCancel:              "キャンセル",
	KeySave:                "保存",
	KeyLoading:             "読み込み中...",
	KeyErrorLoading:        "日本酒を読み込めませんでした。接続を確認してください。",
	KeyRetry:               "再試行",
}

var tables = map[model.Language]Table{
	model.English:  english,
	model.Japanese: japanese,
}

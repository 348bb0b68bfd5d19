// Package i18n maps typed string keys to per-language UI tables.
package i18n

type Key string

const (
	KeyHome                Key = "home"
	KeyShop                Key = "shop"
	KeyMySake              Key = "mySake"
	KeyMore                Key = "more"
	KeySearchAnySake       Key = "searchAnySake"
	KeyBestOffers          Key = "bestOffers"
	KeyBestsellers         Key = "bestsellers"
	KeyPriceDrops          Key = "priceDrops"
	KeyHighlyRated         Key = "highlyRated"
	KeySort                Key = "sort"
	KeyFilter              Key = "filter"
	KeyShowSake            Key = "showSake"
	KeyClear               Key = "clear"
	KeyType                Key = "type"
	KeyRating              Key = "rating"
	KeyPrice               Key = "price"
	KeyOnlyShowsOffers     Key = "onlyShowsOffers"
	KeyPrefecture          Key = "prefecture"
	KeyRiceVariety         Key = "riceVariety"
	KeyShowAll             Key = "showAll"
	KeyExploreBreweries    Key = "exploreBreweries"
	KeyFoodAndSake         Key = "foodAndSake"
	KeySettings            Key = "settings"
	KeyFavorites           Key = "favorites"
	KeyNoFavorites         Key = "noFavorites"
	KeySakeTried           Key = "sakeTried"
	KeyWishlist            Key = "wishlist"
	KeyTasteProfile        Key = "tasteProfile"
	KeyDetails             Key = "details"
	KeyFlavorProfile       Key = "flavorProfile"
	KeyAbout               Key = "about"
	KeyServingTemperature  Key = "servingTemperature"
	KeyRecommendedPairings Key = "recommendedPairings"
	KeyReviews             Key = "reviews"
	KeySeeAll              Key = "seeAll"
	KeySweetness           Key = "sweetness"
	KeyAcidity             Key = "acidity"
	KeyBody                Key = "body"
	KeyUmami               Key = "umami"
	KeyAroma               Key = "aroma"
	KeyEstablished         Key = "established"
	KeyLanguage            Key = "language"
	KeySearch              Key = "search"
	KeyDone                Key = "done"
	KeyCancel              Key = "cancel"
	KeySave                Key = "save"
	KeyLoading             Key = "loading"
	KeyErrorLoading        Key = "errorLoading"
	KeyRetry               Key = "retry"
)

var keys = []Key{
	KeyHome, KeyShop, KeyMySake, KeyMore,
	KeySearchAnySake, KeyBestOffers, KeyBestsellers, KeyPriceDrops, KeyHighlyRated,
	KeySort, KeyFilter, KeyShowSake, KeyClear,
	KeyType, KeyRating, KeyPrice, KeyOnlyShowsOffers, KeyPrefecture, KeyRiceVariety, KeyShowAll,
	KeyExploreBreweries, KeyFoodAndSake, KeySettings,
	KeyFavorites, KeyNoFavorites, KeySakeTried, KeyWishlist, KeyTasteProfile,
	KeyDetails, KeyFlavorProfile, KeyAbout, KeyServingTemperature, KeyRecommendedPairings, KeyReviews, KeySeeAll,
	KeySweetness, KeyAcidity, KeyBody, KeyUmami, KeyAroma,
	KeyEstablished, KeyLanguage,
	KeySearch, KeyDone, KeyCancel, KeySave, KeyLoading, KeyErrorLoading, KeyRetry,
}

// Keys lists every key in declaration order.
func Keys() []Key {
	return append([]Key(nil), keys...)
}

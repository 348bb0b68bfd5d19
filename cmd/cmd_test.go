package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"droscher.com/Umami/configs"
	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/query"
)

const (
	sakeID = "5b0e4c5e-8a57-4d0a-9a55-8b8f5c2f9f10"

	sakeListBody = `{
		"data": [{
			"id": "` + sakeID + `",
			"name_japanese": "獺祭 純米大吟醸45",
			"name_english": "Dassai 45",
			"brewery_name": "Asahi Shuzo",
			"prefecture": "Yamaguchi",
			"classification": "Junmai Daiginjo",
			"price": 42.5,
			"rating": 4.6,
			"review_count": 120,
			"availability": "In Stock"
		}],
		"pagination": {"total": 1, "limit": 50, "offset": 0}
	}`
)

type CommandTestSuite struct {
	suite.Suite
	server *httptest.Server
	mux    *http.ServeMux
	out    *bytes.Buffer
	ctx    *Context
	flags  CommonFlags
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (suite *CommandTestSuite) SetupTest() {
	suite.mux = http.NewServeMux()
	suite.server = httptest.NewServer(suite.mux)

	suite.T().Setenv("UMAMI_CATALOG_BASEURL", suite.server.URL+"/api/")
	suite.T().Setenv("UMAMI_PREFERENCES_STORE", configs.MemoryStore)

	suite.out = &bytes.Buffer{}
	suite.ctx = &Context{Stdout: suite.out}
	suite.flags = CommonFlags{ConfigFile: "testdata/absent.toml"}
}

func (suite *CommandTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *CommandTestSuite) respond(path string, status int, body string) {
	suite.mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (suite *CommandTestSuite) browse() *BrowseCmd {
	return &BrowseCmd{CommonFlags: suite.flags, Sort: string(query.HighestRated), Limit: 50, MaxPrice: query.DefaultMaximumPrice}
}

func (suite *CommandTestSuite) TestBrowse() {
	suite.respond("/api/sake", http.StatusOK, sakeListBody)

	err := suite.browse().Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "Dassai 45")
	suite.Contains(suite.out.String(), "$42.50")
	suite.Contains(suite.out.String(), "Show 1 sake")
}

func (suite *CommandTestSuite) TestBrowse_Japanese() {
	suite.respond("/api/sake", http.StatusOK, sakeListBody)

	cmd := suite.browse()
	cmd.Lang = "ja"

	err := cmd.Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "獺祭")
	suite.Contains(suite.out.String(), "1件の日本酒を表示")
}

func (suite *CommandTestSuite) TestBrowse_FiltersLocally() {
	suite.respond("/api/sake", http.StatusOK, sakeListBody)

	cmd := suite.browse()
	cmd.Prefecture = []string{"Niigata", "Hyogo"}

	err := cmd.Run(suite.ctx)

	suite.Require().NoError(err)
	suite.NotContains(suite.out.String(), "Dassai 45")
	suite.Contains(suite.out.String(), "Show 0 sake")
}

func (suite *CommandTestSuite) TestBrowse_CatalogFailure() {
	suite.respond("/api/sake", http.StatusInternalServerError, `{}`)

	err := suite.browse().Run(suite.ctx)

	suite.Require().Error(err)
	suite.Contains(suite.out.String(), "Could not load sake")
}

func (suite *CommandTestSuite) TestBrowse_UnsupportedLanguage() {
	cmd := suite.browse()
	cmd.Lang = "fr"

	err := cmd.Run(suite.ctx)

	suite.ErrorIs(err, ErrInvalidArgument)
}

func (suite *CommandTestSuite) TestBrowseListParams() {
	cmd := suite.browse()
	cmd.Classification = []string{"junmai_daiginjo"}
	cmd.Prefecture = []string{"Niigata", "Hyogo"}
	cmd.MinPrice = 20
	cmd.Search = "dassai"

	params, filter, err := cmd.listParams()

	suite.Require().NoError(err)
	suite.Require().NotNil(params.Classification)
	suite.Equal(string(model.JunmaiDaiginjo), *params.Classification)
	suite.Nil(params.Prefecture)
	suite.Require().NotNil(params.MinPrice)
	suite.InDelta(20.0, *params.MinPrice, 0.001)
	suite.Nil(params.MaxPrice)
	suite.Equal("dassai", *params.Search)
	suite.Equal("rating", params.SortBy)
	suite.Len(filter.Prefectures, 2)
}

func (suite *CommandTestSuite) TestBrowseListParams_Invalid() {
	cmd := suite.browse()
	cmd.Sort = "cheapest"
	cmd.Limit = -1
	cmd.MinPrice = 500
	cmd.MaxPrice = 100
	cmd.Classification = []string{"beer"}

	_, _, err := cmd.listParams()

	suite.Require().ErrorIs(err, ErrInvalidArgument)
	suite.ErrorContains(err, `unknown sort "cheapest"`)
	suite.ErrorContains(err, "limit and offset must not be negative")
	suite.ErrorContains(err, "min price is above max price")
	suite.ErrorContains(err, `unknown classification "beer"`)
}

func (suite *CommandTestSuite) TestShow() {
	suite.respond("/api/sake/"+sakeID, http.StatusOK,
		`{"data": {"id": "`+sakeID+`", "name_english": "Dassai 45", "classification": "Junmai Daiginjo", "description": "Fruity and clean.", "sweetness": 2}}`)

	err := (&ShowCmd{CommonFlags: suite.flags, ID: sakeID}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "Dassai 45")
	suite.Contains(suite.out.String(), "Flavor")
	suite.Contains(suite.out.String(), "2/5 Dry")
	suite.Contains(suite.out.String(), "Fruity and clean.")
}

func (suite *CommandTestSuite) TestShow_InvalidID() {
	err := (&ShowCmd{CommonFlags: suite.flags, ID: "not-a-uuid"}).Run(suite.ctx)

	suite.ErrorIs(err, ErrInvalidArgument)
	suite.Empty(suite.out.String())
}

func (suite *CommandTestSuite) TestBreweries() {
	suite.respond("/api/breweries", http.StatusOK,
		`{"data": [{"id": "0c1d2e3f-4a5b-4c6d-8e7f-901234567890", "name_english": "Asahi Shuzo", "prefecture": "Yamaguchi", "established": 1948, "sake_count": 12}]}`)

	err := (&BreweriesCmd{CommonFlags: suite.flags, Limit: 50}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "Asahi Shuzo")
	suite.Contains(suite.out.String(), "1948")
}

func (suite *CommandTestSuite) TestBreweries_NegativeLimit() {
	err := (&BreweriesCmd{CommonFlags: suite.flags, Limit: -5}).Run(suite.ctx)

	suite.ErrorIs(err, ErrInvalidArgument)
}

func (suite *CommandTestSuite) TestPairings() {
	suite.respond("/api/food-pairings", http.StatusOK,
		`{"data": [{"id": "7f9c4a1e-2b3d-4e5f-8a6b-1c2d3e4f5a6b", "dish_name": "Salmon Nigiri", "category": "Sushi"}]}`)

	err := (&PairingsCmd{CommonFlags: suite.flags}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "Salmon Nigiri")
	suite.Contains(suite.out.String(), "Sushi")
}

func (suite *CommandTestSuite) TestStats() {
	suite.respond("/api/stats", http.StatusOK, `{"data": {"sake": 120, "breweries": 30, "reviews": 4500}}`)

	err := (&StatsCmd{CommonFlags: suite.flags}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "120")
	suite.Contains(suite.out.String(), "4500")
}

func (suite *CommandTestSuite) TestFavorite() {
	err := (&FavoriteCmd{CommonFlags: suite.flags, ID: sakeID}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "★")
	suite.Contains(suite.out.String(), sakeID)
}

func (suite *CommandTestSuite) TestFavorites_Empty() {
	err := (&FavoritesCmd{CommonFlags: suite.flags}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "No favorites yet")
}

func (suite *CommandTestSuite) TestLanguage() {
	err := (&LanguageCmd{ConfigFile: suite.flags.ConfigFile, Code: "ja"}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "言語")
	suite.Contains(suite.out.String(), "日本語 (ja)")
}

func (suite *CommandTestSuite) TestLanguage_Toggle() {
	err := (&LanguageCmd{ConfigFile: suite.flags.ConfigFile, Toggle: true}).Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Contains(suite.out.String(), "日本語 (ja)")
}

func (suite *CommandTestSuite) TestLanguage_Unsupported() {
	err := (&LanguageCmd{ConfigFile: suite.flags.ConfigFile, Code: "de"}).Run(suite.ctx)

	suite.ErrorIs(err, ErrInvalidArgument)
}

func (suite *CommandTestSuite) TestConfigureCORS() {
	handler := configureCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), []string{"https://umami.test"})

	request := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	request.Header.Set("Origin", "https://umami.test")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Equal("https://umami.test", recorder.Header().Get("Access-Control-Allow-Origin"))

	request.Header.Set("Origin", "https://elsewhere.test")

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	suite.Empty(recorder.Header().Get("Access-Control-Allow-Origin"))
}

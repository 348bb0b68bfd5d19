package preferences_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/Umami/mocks"
	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/preferences"
	"droscher.com/Umami/pkg/repository"
)

var (
	firstID  = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	secondID = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	thirdID  = uuid.MustParse("33333333-3333-4333-8333-333333333333")
)

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	storage *repository.MemoryRepository
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.storage = repository.NewMemoryRepository()
}

func (suite *StoreTestSuite) newStore() *preferences.Store {
	return preferences.New(suite.ctx, suite.storage, zaptest.NewLogger(suite.T()))
}

func (suite *StoreTestSuite) stored(key string) string {
	value, err := suite.storage.GetPreference(suite.ctx, key)
	suite.Require().NoError(err)

	return value
}

func (suite *StoreTestSuite) TestNew_EmptyStorageUsesDefaults() {
	store := suite.newStore()

	suite.Empty(store.Favorites())
	suite.Equal(model.English, store.Language())
}

func (suite *StoreTestSuite) TestToggleFavorite_AddsAndPersists() {
	store := suite.newStore()

	suite.True(store.ToggleFavorite(suite.ctx, secondID))
	suite.True(store.ToggleFavorite(suite.ctx, firstID))

	suite.True(store.IsFavorite(firstID))
	suite.True(store.IsFavorite(secondID))
	suite.False(store.IsFavorite(thirdID))
	suite.Equal([]uuid.UUID{firstID, secondID}, store.Favorites())
	suite.JSONEq(`["`+firstID.String()+`","`+secondID.String()+`"]`, suite.stored(preferences.FavoritesKey))
}

func (suite *StoreTestSuite) TestToggleFavorite_TwiceRestoresState() {
	store := suite.newStore()

	suite.True(store.ToggleFavorite(suite.ctx, firstID))
	suite.False(store.ToggleFavorite(suite.ctx, firstID))

	suite.False(store.IsFavorite(firstID))
	suite.Empty(store.Favorites())
	suite.JSONEq(`[]`, suite.stored(preferences.FavoritesKey))
}

func (suite *StoreTestSuite) TestNew_RestoresPersistedState() {
	first := suite.newStore()
	first.ToggleFavorite(suite.ctx, thirdID)
	first.ToggleFavorite(suite.ctx, firstID)
	first.SetLanguage(suite.ctx, model.Japanese)

	second := suite.newStore()

	suite.Equal([]uuid.UUID{firstID, thirdID}, second.Favorites())
	suite.Equal(model.Japanese, second.Language())
}

func (suite *StoreTestSuite) TestNew_DropsInvalidFavoriteEntries() {
	suite.Require().NoError(suite.storage.SetPreference(suite.ctx, preferences.FavoritesKey,
		`["`+firstID.String()+`", "not-a-uuid", 42, null]`))

	store := suite.newStore()

	suite.Equal([]uuid.UUID{firstID}, store.Favorites())
}

func (suite *StoreTestSuite) TestNew_CorruptFavoritesDocumentIsEmpty() {
	suite.Require().NoError(suite.storage.SetPreference(suite.ctx, preferences.FavoritesKey, `{"oops"`))

	store := suite.newStore()

	suite.Empty(store.Favorites())
}

func (suite *StoreTestSuite) TestNew_UnknownLanguageFallsBackToEnglish() {
	suite.Require().NoError(suite.storage.SetPreference(suite.ctx, preferences.LanguageKey, "fr"))

	store := suite.newStore()

	suite.Equal(model.English, store.Language())
}

func (suite *StoreTestSuite) TestSetLanguage_Persists() {
	store := suite.newStore()

	store.SetLanguage(suite.ctx, model.Japanese)

	suite.Equal(model.Japanese, store.Language())
	suite.Equal("ja", suite.stored(preferences.LanguageKey))
}

func (suite *StoreTestSuite) TestToggleLanguage() {
	store := suite.newStore()

	suite.Equal(model.Japanese, store.ToggleLanguage(suite.ctx))
	suite.Equal("ja", suite.stored(preferences.LanguageKey))
	suite.Equal(model.English, store.ToggleLanguage(suite.ctx))
	suite.Equal("en", suite.stored(preferences.LanguageKey))
}

func (suite *StoreTestSuite) TestSubscribe_ReceivesChanges() {
	store := suite.newStore()

	var events []preferences.Event

	unsubscribe := store.Subscribe(func(event preferences.Event) {
		events = append(events, event)
	})

	store.ToggleFavorite(suite.ctx, firstID)
	store.SetLanguage(suite.ctx, model.Japanese)
	unsubscribe()
	store.ToggleFavorite(suite.ctx, secondID)

	suite.Require().Len(events, 2)
	suite.Equal(preferences.FavoritesChanged, events[0].Kind)
	suite.Equal([]uuid.UUID{firstID}, events[0].Favorites)
	suite.Equal(model.English, events[0].Language)
	suite.Equal(preferences.LanguageChanged, events[1].Kind)
	suite.Equal(model.Japanese, events[1].Language)
}

func (suite *StoreTestSuite) TestSubscribe_CallbackMayReadStore() {
	store := suite.newStore()

	var observed bool

	store.Subscribe(func(preferences.Event) {
		observed = store.IsFavorite(firstID)
	})

	store.ToggleFavorite(suite.ctx, firstID)

	suite.True(observed)
}

func (suite *StoreTestSuite) TestClose_StopsNotifications() {
	store := suite.newStore()
	calls := 0

	store.Subscribe(func(preferences.Event) { calls++ })
	store.Close()
	store.ToggleFavorite(suite.ctx, firstID)
	store.Subscribe(func(preferences.Event) { calls++ })
	store.ToggleFavorite(suite.ctx, secondID)

	suite.Zero(calls)
	suite.Equal([]uuid.UUID{firstID, secondID}, store.Favorites())
}

func (suite *StoreTestSuite) TestConcurrentToggles() {
	store := suite.newStore()
	ids := make([]uuid.UUID, 50)

	for index := range ids {
		ids[index] = uuid.New()
	}

	var waitGroup sync.WaitGroup

	for _, id := range ids {
		waitGroup.Add(1)

		go func(id uuid.UUID) {
			defer waitGroup.Done()

			store.ToggleFavorite(suite.ctx, id)
		}(id)
	}

	waitGroup.Wait()

	suite.Len(store.Favorites(), len(ids))

	reloaded := suite.newStore()
	suite.Len(reloaded.Favorites(), len(ids))
}

func (suite *StoreTestSuite) TestConcurrentChangesAreDeliveredInOrder() {
	store := suite.newStore()

	var (
		waitGroup sync.WaitGroup
		sizes     []int
	)

	store.Subscribe(func(event preferences.Event) {
		sizes = append(sizes, len(event.Favorites))
	})

	for range 50 {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			store.ToggleFavorite(suite.ctx, uuid.New())
		}()
	}

	waitGroup.Wait()

	suite.Require().Len(sizes, 50)

	for index, size := range sizes {
		suite.Equal(index+1, size)
	}
}

type FailingStorageTestSuite struct {
	suite.Suite
	storage      *mocks.PreferenceStorage
	observedLogs *observer.ObservedLogs
	logger       *zap.Logger
}

func TestFailingStorageTestSuite(t *testing.T) {
	suite.Run(t, new(FailingStorageTestSuite))
}

func (suite *FailingStorageTestSuite) SetupTest() {
	suite.storage = mocks.NewPreferenceStorage(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.logger = zap.New(observedZapCore)
}

func (suite *FailingStorageTestSuite) TestNew_ReadFailuresUseDefaults() {
	ctx := context.Background()
	failure := errors.New("disk unavailable")

	suite.storage.EXPECT().GetPreference(ctx, preferences.FavoritesKey).Return("", failure)
	suite.storage.EXPECT().GetPreference(ctx, preferences.LanguageKey).Return("", failure)

	store := preferences.New(ctx, suite.storage, suite.logger)

	suite.Empty(store.Favorites())
	suite.Equal(model.English, store.Language())
	suite.Equal(1, suite.observedLogs.FilterMessage("failed to load favorites").Len())
	suite.Equal(1, suite.observedLogs.FilterMessage("failed to load language").Len())
}

func (suite *FailingStorageTestSuite) TestNew_NotFoundIsQuiet() {
	ctx := context.Background()

	suite.storage.EXPECT().GetPreference(ctx, mock.Anything).Return("", repository.ErrPreferenceNotFound)

	preferences.New(ctx, suite.storage, suite.logger)

	suite.Zero(suite.observedLogs.Len())
}

func (suite *FailingStorageTestSuite) TestMutations_WriteFailuresAreLoggedAndIgnored() {
	ctx := context.Background()
	failure := errors.New("read-only file system")

	suite.storage.EXPECT().GetPreference(ctx, mock.Anything).Return("", repository.ErrPreferenceNotFound)
	suite.storage.EXPECT().SetPreference(ctx, preferences.FavoritesKey, `["`+firstID.String()+`"]`).Return(failure).Once()
	suite.storage.EXPECT().SetPreference(ctx, preferences.LanguageKey, "ja").Return(failure).Once()

	store := preferences.New(ctx, suite.storage, suite.logger)

	suite.True(store.ToggleFavorite(ctx, firstID))
	suite.True(store.IsFavorite(firstID))

	store.SetLanguage(ctx, model.Japanese)
	suite.Equal(model.Japanese, store.Language())

	logs := suite.observedLogs.FilterMessage("failed to persist preference")
	suite.Require().Equal(2, logs.Len())
	suite.Equal(preferences.FavoritesKey, logs.All()[0].ContextMap()["key"])
	suite.Equal(preferences.LanguageKey, logs.All()[1].ContextMap()["key"])
}

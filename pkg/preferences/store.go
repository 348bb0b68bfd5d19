// Package preferences holds the user's favorite sake and display language.
//
// A Store is constructed once with New and handed to whatever needs it. Every mutation
// rewrites the persisted value immediately and then notifies subscribers. Storage
// failures are logged and never surfaced to callers.
package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/repository"
)

const (
	FavoritesKey = "favorites"
	LanguageKey  = "selectedLanguage"
)

type Storage interface {
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key string, value string) error
}

type EventKind int

const (
	FavoritesChanged EventKind = iota + 1
	LanguageChanged
)

type Event struct {
	Kind      EventKind
	Favorites []uuid.UUID
	Language  model.Language
}

type Store struct {
	storage Storage
	logger  *zap.Logger

	mutex     sync.RWMutex
	favorites map[uuid.UUID]struct{}
	language  model.Language
	issued    uint64

	// deliveries happen in the order their changes were made
	deliveryMutex sync.Mutex
	turn          *sync.Cond
	delivered     uint64

	subscriberMutex sync.Mutex
	subscribers     map[int]func(Event)
	nextSubscriber  int
}

func New(ctx context.Context, storage Storage, logger *zap.Logger) *Store {
	store := &Store{
		storage:     storage,
		logger:      logger,
		favorites:   map[uuid.UUID]struct{}{},
		language:    model.DefaultLanguage,
		subscribers: map[int]func(Event){},
	}
	store.turn = sync.NewCond(&store.deliveryMutex)

	store.loadFavorites(ctx)
	store.loadLanguage(ctx)

	return store
}

// ToggleFavorite flips membership of id and returns whether it is now a favorite.
func (s *Store) ToggleFavorite(ctx context.Context, id uuid.UUID) bool {
	s.mutex.Lock()

	_, found := s.favorites[id]
	if found {
		delete(s.favorites, id)
	} else {
		s.favorites[id] = struct{}{}
	}

	favorites := s.sortedFavorites()
	s.persistFavorites(ctx, favorites)
	language := s.language
	sequence := s.nextSequence()

	s.mutex.Unlock()

	s.deliver(sequence, Event{Kind: FavoritesChanged, Favorites: favorites, Language: language})

	return !found
}

func (s *Store) IsFavorite(id uuid.UUID) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, found := s.favorites[id]

	return found
}

// Favorites returns the favorite ids sorted by their string form.
func (s *Store) Favorites() []uuid.UUID {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.sortedFavorites()
}

func (s *Store) Language() model.Language {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.language
}

func (s *Store) SetLanguage(ctx context.Context, language model.Language) {
	s.mutex.Lock()

	s.language = language
	s.persist(ctx, LanguageKey, language.String())
	favorites := s.sortedFavorites()
	sequence := s.nextSequence()

	s.mutex.Unlock()

	s.deliver(sequence, Event{Kind: LanguageChanged, Favorites: favorites, Language: language})
}

func (s *Store) ToggleLanguage(ctx context.Context) model.Language {
	s.mutex.Lock()

	s.language = s.language.Toggle()
	language := s.language
	s.persist(ctx, LanguageKey, language.String())
	favorites := s.sortedFavorites()
	sequence := s.nextSequence()

	s.mutex.Unlock()

	s.deliver(sequence, Event{Kind: LanguageChanged, Favorites: favorites, Language: language})

	return language
}

// Subscribe registers fn for every later change. Callbacks run on the mutating goroutine
// after the store's lock has been released, one change at a time and in the order the
// changes were made. A callback may read the store but must not mutate it.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subscriberMutex.Lock()
	defer s.subscriberMutex.Unlock()

	if s.subscribers == nil {
		return func() {}
	}

	id := s.nextSubscriber
	s.nextSubscriber++
	s.subscribers[id] = fn

	return func() {
		s.subscriberMutex.Lock()
		defer s.subscriberMutex.Unlock()

		delete(s.subscribers, id)
	}
}

// Close drops all subscribers. State is already persisted, so there is nothing to flush.
func (s *Store) Close() {
	s.subscriberMutex.Lock()
	defer s.subscriberMutex.Unlock()

	s.subscribers = nil
}

// nextSequence must be called with the state lock held.
func (s *Store) nextSequence() uint64 {
	s.issued++

	return s.issued
}

// deliver waits until every earlier change has been delivered, then notifies subscribers.
func (s *Store) deliver(sequence uint64, event Event) {
	s.deliveryMutex.Lock()
	for s.delivered != sequence-1 {
		s.turn.Wait()
	}
	s.deliveryMutex.Unlock()

	defer func() {
		s.deliveryMutex.Lock()
		s.delivered = sequence
		s.turn.Broadcast()
		s.deliveryMutex.Unlock()
	}()

	s.notify(event)
}

func (s *Store) notify(event Event) {
	s.subscriberMutex.Lock()

	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	callbacks := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		callbacks = append(callbacks, s.subscribers[id])
	}

	s.subscriberMutex.Unlock()

	for _, callback := range callbacks {
		callback(event)
	}
}

func (s *Store) sortedFavorites() []uuid.UUID {
	favorites := make([]uuid.UUID, 0, len(s.favorites))
	for id := range s.favorites {
		favorites = append(favorites, id)
	}

	slices.SortFunc(favorites, func(a, b uuid.UUID) int {
		return compareStrings(a.String(), b.String())
	})

	return favorites
}

func (s *Store) persistFavorites(ctx context.Context, favorites []uuid.UUID) {
	idStrings := make([]string, 0, len(favorites))
	for _, id := range favorites {
		idStrings = append(idStrings, id.String())
	}

	encoded, err := json.Marshal(idStrings)
	if err != nil {
		s.logger.Error("failed to encode favorites", zap.Error(err))

		return
	}

	s.persist(ctx, FavoritesKey, string(encoded))
}

func (s *Store) persist(ctx context.Context, key string, value string) {
	if err := s.storage.SetPreference(ctx, key, value); err != nil {
		s.logger.Error("failed to persist preference", zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) loadFavorites(ctx context.Context) {
	stored, err := s.storage.GetPreference(ctx, FavoritesKey)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			s.logger.Error("failed to load favorites", zap.Error(err))
		}

		return
	}

	var idStrings []any
	if err = json.Unmarshal([]byte(stored), &idStrings); err != nil {
		s.logger.Warn("discarding unreadable favorites", zap.Error(err))

		return
	}

	dropped := 0

	for _, entry := range idStrings {
		text, isString := entry.(string)
		if !isString {
			dropped++

			continue
		}

		id, err := uuid.Parse(text)
		if err != nil {
			dropped++

			continue
		}

		s.favorites[id] = struct{}{}
	}

	if dropped > 0 {
		s.logger.Warn("dropped invalid favorite ids", zap.Int("dropped", dropped))
	}
}

func (s *Store) loadLanguage(ctx context.Context) {
	stored, err := s.storage.GetPreference(ctx, LanguageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			s.logger.Error("failed to load language", zap.Error(err))
		}

		return
	}

	language, found := model.ParseLanguage(stored)
	if !found {
		s.logger.Warn("unknown language code, using default", zap.String("code", stored), zap.Stringer("default", model.DefaultLanguage))
	}

	s.language = language
}

func compareStrings(a string, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

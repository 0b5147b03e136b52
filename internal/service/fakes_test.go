package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
)

type profileRepoFake struct {
	mu       sync.Mutex
	profiles map[int64]entities.Profile
	SaveFunc func(ctx context.Context, p *entities.Profile) (bool, error)
}

func newProfileRepoFake(profiles ...entities.Profile) *profileRepoFake {
	f := &profileRepoFake{profiles: make(map[int64]entities.Profile)}
	for _, p := range profiles {
		f.profiles[p.ChatID] = p
	}
	return f
}

func (f *profileRepoFake) Get(_ context.Context, chatID int64) (*entities.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[chatID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return &p, nil
}

func (f *profileRepoFake) Save(ctx context.Context, p *entities.Profile) (bool, error) {
	if f.SaveFunc != nil {
		return f.SaveFunc(ctx, p)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, exists := f.profiles[p.ChatID]
	f.profiles[p.ChatID] = *p
	return !exists, nil
}

type catalogRepoFake struct {
	words     []entities.VocabularyItem
	sentences []entities.PracticeSentence
}

func (f *catalogRepoFake) WordsAtLevelUpTo(_ context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error) {
	var out []entities.VocabularyItem
	for _, w := range f.words {
		if w.Language == lang && !level.Less(w.Level) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *catalogRepoFake) WordsByLevel(_ context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error) {
	var out []entities.VocabularyItem
	for _, w := range f.words {
		if w.Language == lang && w.Level == level {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *catalogRepoFake) AllWords(_ context.Context, lang entities.Language) ([]entities.VocabularyItem, error) {
	var out []entities.VocabularyItem
	for _, w := range f.words {
		if w.Language == lang {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *catalogRepoFake) WordByID(_ context.Context, id int64) (*entities.VocabularyItem, error) {
	for _, w := range f.words {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, repository.ErrWordNotFound
}

func (f *catalogRepoFake) SentencesAtLevelUpTo(_ context.Context, level entities.Level, lang entities.Language) ([]entities.PracticeSentence, error) {
	var out []entities.PracticeSentence
	for _, s := range f.sentences {
		if s.Language == lang && !level.Less(s.Level) {
			out = append(out, s)
		}
	}
	return out, nil
}

type wordListRepoFake struct {
	mu      sync.Mutex
	catalog *catalogRepoFake
	entries map[int64]map[int64]time.Time
	AddFunc func(ctx context.Context, chatID, wordID int64) (bool, error)
}

func newWordListRepoFake(catalog *catalogRepoFake) *wordListRepoFake {
	return &wordListRepoFake{catalog: catalog, entries: make(map[int64]map[int64]time.Time)}
}

func (f *wordListRepoFake) Add(ctx context.Context, chatID, wordID int64) (bool, error) {
	if f.AddFunc != nil {
		return f.AddFunc(ctx, chatID, wordID)
	}
	if _, err := f.catalog.WordByID(ctx, wordID); err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries[chatID] == nil {
		f.entries[chatID] = make(map[int64]time.Time)
	}
	if _, ok := f.entries[chatID][wordID]; ok {
		return false, nil
	}
	f.entries[chatID][wordID] = time.Now()
	return true, nil
}

func (f *wordListRepoFake) Remove(_ context.Context, chatID, wordID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[chatID][wordID]; !ok {
		return false, nil
	}
	delete(f.entries[chatID], wordID)
	return true, nil
}

func (f *wordListRepoFake) Clear(_ context.Context, chatID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.entries[chatID]))
	delete(f.entries, chatID)
	return n, nil
}

func (f *wordListRepoFake) List(ctx context.Context, chatID int64) ([]entities.WordListEntry, error) {
	f.mu.Lock()
	ids := make([]int64, 0, len(f.entries[chatID]))
	for id := range f.entries[chatID] {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]entities.WordListEntry, 0, len(ids))
	for _, id := range ids {
		item, err := f.catalog.WordByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.WordListEntry{ChatID: chatID, Item: *item})
	}
	return out, nil
}

func (f *wordListRepoFake) Find(ctx context.Context, chatID, wordID int64) (*entities.WordListEntry, error) {
	f.mu.Lock()
	_, ok := f.entries[chatID][wordID]
	f.mu.Unlock()
	if !ok {
		return nil, repository.ErrEntryNotFound
	}
	item, err := f.catalog.WordByID(ctx, wordID)
	if err != nil {
		return nil, err
	}
	return &entities.WordListEntry{ChatID: chatID, Item: *item}, nil
}

func (f *wordListRepoFake) count(chatID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries[chatID])
}

type transactorFake struct {
	calls int
}

func (f *transactorFake) WithinTx(ctx context.Context, fn func(ctx context.Context, tx postgres.DBTX) error) error {
	f.calls++
	return fn(ctx, nil)
}

func completeProfile(chatID int64, level entities.Level) entities.Profile {
	p := entities.NewProfile(chatID, "Test", "")
	p.NativeLanguage = entities.LanguageRussian
	p.TargetLanguage = entities.LanguageChinese
	p.Level = level
	return *p
}

func zhWords(n int, level entities.Level) []entities.VocabularyItem {
	out := make([]entities.VocabularyItem, n)
	for i := range out {
		out[i] = entities.VocabularyItem{
			ID:          int64(i + 1),
			Word:        "词",
			Translation: "слово",
			Level:       level,
			Language:    entities.LanguageChinese,
		}
	}
	return out
}

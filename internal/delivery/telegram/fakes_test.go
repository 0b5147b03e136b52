package telegram

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/language-teacher-bot/internal/scheduler"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
	"github.com/aliskhannn/language-teacher-bot/internal/storage"
)

type updatesResult struct {
	updates []tgbotapi.Update
	err     error
}

// botFake records everything the handler sends. GetUpdates replays script
// and calls drained once it runs out.
type botFake struct {
	mu          sync.Mutex
	sent        []tgbotapi.Chattable
	requests    []tgbotapi.Chattable
	configs     []tgbotapi.UpdateConfig
	script      []updatesResult
	drained     func()
	RequestFunc func(c tgbotapi.Chattable) error
}

func (b *botFake) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, nil
}

func (b *botFake) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	b.requests = append(b.requests, c)
	fn := b.RequestFunc
	b.mu.Unlock()

	if fn != nil {
		if err := fn(c); err != nil {
			return nil, err
		}
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *botFake) GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error) {
	b.mu.Lock()
	b.configs = append(b.configs, config)
	if len(b.script) == 0 {
		drained := b.drained
		b.mu.Unlock()
		if drained != nil {
			drained()
		}
		return nil, nil
	}
	next := b.script[0]
	b.script = b.script[1:]
	b.mu.Unlock()

	return next.updates, next.err
}

func (b *botFake) messages() []tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []tgbotapi.MessageConfig
	for _, c := range b.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg)
		}
	}
	return out
}

func (b *botFake) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	msgs := b.messages()
	require.NotEmpty(t, msgs)
	return msgs[len(msgs)-1]
}

func (b *botFake) lastEdit(t *testing.T) tgbotapi.EditMessageTextConfig {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := len(b.sent) - 1; i >= 0; i-- {
		if edit, ok := b.sent[i].(tgbotapi.EditMessageTextConfig); ok {
			return edit
		}
	}
	require.FailNow(t, "no edits sent")
	return tgbotapi.EditMessageTextConfig{}
}

func (b *botFake) lastCallbackAnswer(t *testing.T) tgbotapi.CallbackConfig {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := len(b.requests) - 1; i >= 0; i-- {
		if answer, ok := b.requests[i].(tgbotapi.CallbackConfig); ok {
			return answer
		}
	}
	require.FailNow(t, "no callback answers sent")
	return tgbotapi.CallbackConfig{}
}

func (b *botFake) webhookDeletes() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.requests {
		if _, ok := c.(tgbotapi.DeleteWebhookConfig); ok {
			n++
		}
	}
	return n
}

func (b *botFake) sentTexts() []string {
	var out []string
	for _, msg := range b.messages() {
		out = append(out, msg.Text)
	}
	return out
}

type profileRepoFake struct {
	mu       sync.Mutex
	profiles map[int64]entities.Profile
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

func (f *profileRepoFake) Save(_ context.Context, p *entities.Profile) (bool, error) {
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

func (f *catalogRepoFake) filterWords(keep func(w entities.VocabularyItem) bool) []entities.VocabularyItem {
	var out []entities.VocabularyItem
	for _, w := range f.words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func (f *catalogRepoFake) WordsAtLevelUpTo(_ context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error) {
	return f.filterWords(func(w entities.VocabularyItem) bool {
		return w.Language == lang && !level.Less(w.Level)
	}), nil
}

func (f *catalogRepoFake) WordsByLevel(_ context.Context, level entities.Level, lang entities.Language) ([]entities.VocabularyItem, error) {
	return f.filterWords(func(w entities.VocabularyItem) bool {
		return w.Language == lang && w.Level == level
	}), nil
}

func (f *catalogRepoFake) AllWords(_ context.Context, lang entities.Language) ([]entities.VocabularyItem, error) {
	return f.filterWords(func(w entities.VocabularyItem) bool { return w.Language == lang }), nil
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
	entries map[int64]map[int64]bool
}

func newWordListRepoFake(catalog *catalogRepoFake) *wordListRepoFake {
	return &wordListRepoFake{catalog: catalog, entries: make(map[int64]map[int64]bool)}
}

func (f *wordListRepoFake) Add(ctx context.Context, chatID, wordID int64) (bool, error) {
	if _, err := f.catalog.WordByID(ctx, wordID); err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries[chatID] == nil {
		f.entries[chatID] = make(map[int64]bool)
	}
	if f.entries[chatID][wordID] {
		return false, nil
	}
	f.entries[chatID][wordID] = true
	return true, nil
}

func (f *wordListRepoFake) Remove(_ context.Context, chatID, wordID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.entries[chatID][wordID] {
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
	ok := f.entries[chatID][wordID]
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

const testChatID int64 = 42

// fixture wires the handler to real services over in-memory repositories.
type fixture struct {
	t         *testing.T
	ctx       context.Context
	bot       *botFake
	handler   *Handler
	chats     *storage.ChatStore
	sched     *scheduler.Manual
	profiles  *profileRepoFake
	unknown   *wordListRepoFake
	favorites *wordListRepoFake
}

func newFixture(t *testing.T, words []entities.VocabularyItem, sentences []entities.PracticeSentence) *fixture {
	t.Helper()

	profiles := &profileRepoFake{profiles: make(map[int64]entities.Profile)}
	catalog := &catalogRepoFake{words: words, sentences: sentences}
	unknown := newWordListRepoFake(catalog)
	favorites := newWordListRepoFake(catalog)
	chats := storage.NewChatStore()
	sched := scheduler.NewManual()
	bot := &botFake{}

	wordLists := service.NewWordListService(unknown, favorites)
	sentenceSvc := service.NewSentenceService(profiles, catalog, chats, sched, 2*time.Second)

	h := NewHandler(bot, zaptest.NewLogger(t), Services{
		Profiles:   service.NewProfileService(profiles),
		Catalog:    service.NewCatalogService(catalog),
		WordLists:  wordLists,
		Flashcards: service.NewFlashcardService(profiles, catalog, wordLists, chats, "https://example.com/test/%s"),
		Sentences:  sentenceSvc,
	}, chats, Options{HandshakeRetry: time.Millisecond, ErrorBackoff: time.Millisecond})
	sentenceSvc.SetPresenter(h)

	return &fixture{
		t:         t,
		ctx:       context.Background(),
		bot:       bot,
		handler:   h,
		chats:     chats,
		sched:     sched,
		profiles:  profiles,
		unknown:   unknown,
		favorites: favorites,
	}
}

// withProfile stores a finished ru -> zh profile.
func (f *fixture) withProfile(level entities.Level) *fixture {
	p := entities.NewProfile(testChatID, "Ivan", "")
	p.NativeLanguage = entities.LanguageRussian
	p.TargetLanguage = entities.LanguageChinese
	p.Level = level
	f.profiles.profiles[testChatID] = *p
	f.chats.SetStep(testChatID, entities.StepInMenu)
	return f
}

func (f *fixture) say(text string) {
	f.handler.handleMessage(f.ctx, &tgbotapi.Message{
		MessageID: 1,
		Chat:      &tgbotapi.Chat{ID: testChatID},
		From:      &tgbotapi.User{ID: testChatID, FirstName: "Ivan"},
		Text:      text,
	})
}

func (f *fixture) press(data string) {
	f.handler.handleCallback(f.ctx, &tgbotapi.CallbackQuery{
		ID:   "cb",
		From: &tgbotapi.User{ID: testChatID},
		Message: &tgbotapi.Message{
			MessageID: 7,
			Chat:      &tgbotapi.Chat{ID: testChatID},
		},
		Data: data,
	})
}

func (f *fixture) step() entities.DialogStep {
	return f.chats.View(testChatID).Step
}

func (f *fixture) profile() entities.Profile {
	f.profiles.mu.Lock()
	defer f.profiles.mu.Unlock()
	return f.profiles.profiles[testChatID]
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

func keyboardLabels(markup any) [][]string {
	kb, ok := markup.(tgbotapi.ReplyKeyboardMarkup)
	if !ok {
		return nil
	}
	out := make([][]string, len(kb.Keyboard))
	for i, row := range kb.Keyboard {
		for _, b := range row {
			out[i] = append(out[i], b.Text)
		}
	}
	return out
}

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/testhelper"
)

var allTables = []string{"favorite_words", "unknown_words", "sentences", "words", "profiles"}

func seedCatalog(t *testing.T, db postgres.DBTX) []entities.VocabularyItem {
	t.Helper()
	ctx := context.Background()
	catalog := repository.NewCatalogRepository(db)

	words := []entities.VocabularyItem{
		{Word: "你好", Transcription: "nǐ hǎo", Translation: "привет, здравствуйте", Level: entities.LevelA1, Language: entities.LanguageChinese},
		{Word: "谢谢", Transcription: "xièxie", Translation: "спасибо", Level: entities.LevelA2, Language: entities.LanguageChinese},
		{Word: "经济", Transcription: "jīngjì", Translation: "экономика", Level: entities.LevelB2, Language: entities.LanguageChinese},
		{Word: "привет", Translation: "你好", Level: entities.LevelA1, Language: entities.LanguageRussian},
	}
	n, err := catalog.InsertWords(ctx, words)
	require.NoError(t, err)
	require.EqualValues(t, len(words), n)

	sentences := []entities.PracticeSentence{
		{Words: "我, 是, 学生", CorrectSentence: "我是学生", Level: entities.LevelA1, Language: entities.LanguageChinese},
		{Words: "他, 喜欢, 经济", CorrectSentence: "他喜欢经济", Level: entities.LevelB2, Language: entities.LanguageChinese},
	}
	_, err = catalog.InsertSentences(ctx, sentences)
	require.NoError(t, err)

	all, err := catalog.AllWords(ctx, entities.LanguageChinese)
	require.NoError(t, err)
	return all
}

func TestProfileRepository(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, allTables...)
	ctx := context.Background()
	repo := repository.NewProfileRepository(pool)

	_, err := repo.Get(ctx, 100)
	require.ErrorIs(t, err, repository.ErrProfileNotFound)

	p := entities.NewProfile(100, "Иван", "Петров")
	created, err := repo.Save(ctx, p)
	require.NoError(t, err)
	assert.True(t, created)

	p.NativeLanguage = entities.LanguageRussian
	p.TargetLanguage = entities.LanguageChinese
	p.Level = entities.LevelB1
	p.SentenceRounds = 15
	created, err = repo.Save(ctx, p)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageRussian, got.NativeLanguage)
	assert.Equal(t, entities.LanguageChinese, got.TargetLanguage)
	assert.Equal(t, entities.LevelB1, got.Level)
	assert.Equal(t, 15, got.SentenceRounds)
	assert.Equal(t, "Иван", got.FirstName)
}

func TestCatalogRepositoryCumulativeFilter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, allTables...)
	ctx := context.Background()
	seedCatalog(t, pool)
	repo := repository.NewCatalogRepository(pool)

	upToA2, err := repo.WordsAtLevelUpTo(ctx, entities.LevelA2, entities.LanguageChinese)
	require.NoError(t, err)
	assert.Len(t, upToA2, 2)

	exactB2, err := repo.WordsByLevel(ctx, entities.LevelB2, entities.LanguageChinese)
	require.NoError(t, err)
	require.Len(t, exactB2, 1)
	assert.Equal(t, "经济", exactB2[0].Word)

	ru, err := repo.AllWords(ctx, entities.LanguageRussian)
	require.NoError(t, err)
	assert.Len(t, ru, 1)

	sentences, err := repo.SentencesAtLevelUpTo(ctx, entities.LevelB1, entities.LanguageChinese)
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	assert.Equal(t, []string{"我", "是", "学生"}, sentences[0].Tokens())

	_, err = repo.WordByID(ctx, 999999)
	require.ErrorIs(t, err, repository.ErrWordNotFound)
}

func TestWordListRepositoryIsIdempotent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, allTables...)
	ctx := context.Background()
	words := seedCatalog(t, pool)
	favorites := repository.NewFavoriteWordRepository(pool)

	created, err := favorites.Add(ctx, 7, words[0].ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = favorites.Add(ctx, 7, words[0].ID)
	require.NoError(t, err)
	assert.False(t, created)

	list, err := favorites.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, words[0].Word, list[0].Item.Word)

	entry, err := favorites.Find(ctx, 7, words[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ChatID)

	_, err = favorites.Add(ctx, 7, 999999)
	require.ErrorIs(t, err, repository.ErrWordNotFound)
}

func TestWordListRepositoryRemoveAndClear(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, allTables...)
	ctx := context.Background()
	words := seedCatalog(t, pool)
	unknown := repository.NewUnknownWordRepository(pool)

	for _, w := range words {
		_, err := unknown.Add(ctx, 1, w.ID)
		require.NoError(t, err)
	}

	removed, err := unknown.Remove(ctx, 1, words[0].ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = unknown.Remove(ctx, 1, words[0].ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = unknown.Find(ctx, 1, words[0].ID)
	require.ErrorIs(t, err, repository.ErrEntryNotFound)

	n, err := unknown.Clear(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, len(words)-1, n)

	list, err := unknown.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactorRollsBack(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool, allTables...)
	ctx := context.Background()
	tr := postgres.NewTransactor(pool)

	err := tr.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		_, err := repository.NewProfileRepository(tx).Save(ctx, entities.NewProfile(5, "", ""))
		require.NoError(t, err)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = repository.NewProfileRepository(pool).Get(ctx, 5)
	require.ErrorIs(t, err, repository.ErrProfileNotFound)
}

package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionDictionary = "dict"
	actionFavorite   = "fav"
	actionWordList   = "words"
	actionDelete     = "del"
	actionClear      = "clr"
	actionMenu       = "menu"
)

// tierAll stands for the dictionary of every tier.
const tierAll = "all"

var errBadCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func (cd callbackData) intParam(i int) (int, error) {
	if i >= len(cd.Params) {
		return 0, errBadCallback
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, errBadCallback
	}
	return n, nil
}

func (cd callbackData) idParam(i int) (int64, error) {
	if i >= len(cd.Params) {
		return 0, errBadCallback
	}
	id, err := strconv.ParseInt(cd.Params[i], 10, 64)
	if err != nil {
		return 0, errBadCallback
	}
	return id, nil
}

func (cd callbackData) tierParam(i int) (entities.Level, error) {
	if i >= len(cd.Params) {
		return "", errBadCallback
	}
	if cd.Params[i] == tierAll {
		return "", nil
	}
	level, ok := entities.ParseLevel(cd.Params[i])
	if !ok {
		return "", errBadCallback
	}
	return level, nil
}

func (cd callbackData) sectionParam(i int) (entities.WordListSection, error) {
	if i >= len(cd.Params) {
		return "", errBadCallback
	}
	section := entities.WordListSection(cd.Params[i])
	if !section.Valid() {
		return "", errBadCallback
	}
	return section, nil
}

func encodeTier(tier entities.Level) string {
	if tier == "" {
		return tierAll
	}
	return tier.String()
}

// buildDictionaryCallback builds callback data for opening a dictionary page.
func buildDictionaryCallback(tier entities.Level, page int) string {
	return callbackData{
		Action: actionDictionary,
		Params: []string{encodeTier(tier), strconv.Itoa(page)},
	}.encode()
}

// buildDictionaryFavoriteCallback builds callback data for starring a dictionary word.
func buildDictionaryFavoriteCallback(tier entities.Level, page int, wordID int64) string {
	return callbackData{
		Action: actionFavorite,
		Params: []string{encodeTier(tier), strconv.Itoa(page), strconv.FormatInt(wordID, 10)},
	}.encode()
}

func buildWordListCallback(section entities.WordListSection, page int) string {
	return callbackData{
		Action: actionWordList,
		Params: []string{string(section), strconv.Itoa(page)},
	}.encode()
}

func buildDeleteCallback(section entities.WordListSection, page int, wordID int64) string {
	return callbackData{
		Action: actionDelete,
		Params: []string{string(section), strconv.Itoa(page), strconv.FormatInt(wordID, 10)},
	}.encode()
}

func buildClearCallback(section entities.WordListSection) string {
	return callbackData{
		Action: actionClear,
		Params: []string{string(section)},
	}.encode()
}

func buildMenuCallback() string {
	return actionMenu
}

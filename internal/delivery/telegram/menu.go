package telegram

import (
	"context"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
)

func (h *Handler) showMainMenu(chatID int64, t *texts) {
	h.chats.SetStep(chatID, entities.StepInMenu)
	h.send(withKeyboard(newMessage(chatID, md(t.mainMenu)), buildMainMenuKeyboard(t)))
}

// backToMenu abandons any game and returns to the main menu.
func (h *Handler) backToMenu(ctx context.Context, chatID int64) error {
	h.chats.EndGames(chatID)

	p, err := h.profiles.Get(ctx, chatID)
	if err != nil {
		return err
	}
	if !p.Complete() {
		return h.onStart(ctx, request{chatID: chatID})
	}

	h.showMainMenu(chatID, textsFor(p.NativeLanguage))
	return nil
}

func (h *Handler) onMenu(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	switch req.in.cmd {
	case cmdGames:
		h.showGamesMenu(req.chatID, t)
	case cmdDictionary:
		h.chats.SetStep(req.chatID, entities.StepInDictionary)
		h.send(withKeyboard(newMessage(req.chatID, md(t.dictionaryPrompt)), buildDictionaryLevelKeyboard(t)))
	case cmdMyWords:
		h.chats.SetStep(req.chatID, entities.StepInMyWords)
		h.send(withKeyboard(newMessage(req.chatID, md(t.myWordsPrompt)), buildMyWordsKeyboard(t)))
	case cmdSettings:
		return h.showSettings(ctx, req.chatID)
	default:
		h.send(withKeyboard(newMessage(req.chatID, md(t.unknownCommand)), buildMainMenuKeyboard(t)))
	}

	return nil
}

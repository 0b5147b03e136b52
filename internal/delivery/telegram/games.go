package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

func (h *Handler) showGamesMenu(chatID int64, t *texts) {
	h.chats.SetStep(chatID, entities.StepInGames)
	h.send(withKeyboard(newMessage(chatID, md(t.gamesMenu)), buildGamesKeyboard(t)))
}

func (h *Handler) showFlashcardOptions(chatID int64, t *texts) {
	h.chats.SetStep(chatID, entities.StepInFlashcardOptions)
	h.send(withKeyboard(newMessage(chatID, md(t.flashcardOptions)), buildFlashcardOptionsKeyboard(t)))
}

func (h *Handler) onGames(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	switch req.in.cmd {
	case cmdFlashcards:
		h.showFlashcardOptions(req.chatID, t)
	case cmdSentences:
		return h.startSentences(ctx, req.chatID, t)
	default:
		h.send(withKeyboard(newMessage(req.chatID, md(t.unknownCommand)), buildGamesKeyboard(t)))
	}
	return nil
}

func (h *Handler) onFlashcardOptions(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	switch req.in.cmd {
	case cmdFlashcardSize:
		return h.startFlashcards(ctx, req.chatID, t, req.in.n, false)
	case cmdFlashcardAll:
		return h.startFlashcards(ctx, req.chatID, t, 0, false)
	case cmdFlashcardMyWords:
		return h.startFlashcards(ctx, req.chatID, t, 0, true)
	case cmdFlashcardTier:
		h.chats.SetStep(req.chatID, entities.StepAwaitingFlashcardTier)
		h.send(withKeyboard(newMessage(req.chatID, md(t.chooseTier)), buildFlashcardTierKeyboard(t)))
	case cmdBackToGames:
		h.showGamesMenu(req.chatID, t)
	default:
		h.send(withKeyboard(newMessage(req.chatID, md(t.unknownCommand)), buildFlashcardOptionsKeyboard(t)))
	}
	return nil
}

func (h *Handler) onFlashcardTier(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	var text string
	switch req.in.cmd {
	case cmdLevel:
		if err := h.flashcards.SelectTier(req.chatID, req.in.level); err != nil {
			return err
		}
		text = mdf(t.tierSaved, req.in.level)
	case cmdCurrentTier:
		if err := h.flashcards.SelectTier(req.chatID, ""); err != nil {
			return err
		}
		text = md(t.tierCurrent)
	case cmdBackToGames:
		h.showGamesMenu(req.chatID, t)
		return nil
	default:
		h.send(withKeyboard(newMessage(req.chatID, md(t.invalidLevel)), buildFlashcardTierKeyboard(t)))
		return nil
	}

	h.send(newMessage(req.chatID, text))
	h.showFlashcardOptions(req.chatID, t)
	return nil
}

func (h *Handler) startFlashcards(ctx context.Context, chatID int64, t *texts, size int, onlyUnknown bool) error {
	card, tier, err := h.flashcards.Start(ctx, chatID, size, onlyUnknown)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPool) {
			text := t.emptyPool
			if onlyUnknown {
				text = t.emptyMyWords
			}
			h.send(newMessage(chatID, md(text)))
			h.showMainMenu(chatID, t)
			return nil
		}
		return err
	}

	// The menu step is where the chat lands once the session is over.
	h.chats.SetStep(chatID, entities.StepInMenu)
	h.send(newMessage(chatID, mdf(t.flashcardStarted, tier)))
	h.send(withKeyboard(newMessage(chatID, formatCard(t, card)), buildCardKeyboard(t)))
	return nil
}

func (h *Handler) onFlashcardInput(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	in := service.FlashcardInput{Kind: service.InputAnswer, Text: req.text}
	switch req.in.cmd {
	case cmdDontKnow:
		in.Kind = service.InputUnfamiliar
	case cmdAddFavorite:
		in.Kind = service.InputFavorite
	}

	out, err := h.flashcards.Answer(ctx, req.chatID, in)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			h.showMainMenu(req.chatID, t)
			return nil
		}
		return err
	}

	h.send(newMessage(req.chatID, formatVerdict(t, out)))

	if out.Result != nil {
		h.send(newMessage(req.chatID, formatFlashcardResult(t, out.Result)))
		h.showMainMenu(req.chatID, t)
		return nil
	}

	h.send(withKeyboard(newMessage(req.chatID, formatCard(t, out.Next)), buildCardKeyboard(t)))
	return nil
}

func (h *Handler) startSentences(ctx context.Context, chatID int64, t *texts) error {
	round, err := h.sentences.Start(ctx, chatID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPool) {
			h.send(newMessage(chatID, md(t.emptySentences)))
			h.showMainMenu(chatID, t)
			return nil
		}
		return err
	}

	h.chats.SetStep(chatID, entities.StepInMenu)
	h.send(newMessage(chatID, md(t.sentenceStarted)))
	h.send(withKeyboard(newMessage(chatID, formatSentenceRound(t, *round)), buildSentenceKeyboard(t)))
	return nil
}

func (h *Handler) onSentenceInput(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	out, err := h.sentences.Answer(ctx, req.chatID, req.text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoundPending):
			h.send(newMessage(req.chatID, md(t.sentenceWait)))
			return nil
		case errors.Is(err, service.ErrNoActiveSession):
			h.showMainMenu(req.chatID, t)
			return nil
		}
		return err
	}

	if out.Correct {
		h.send(newMessage(req.chatID, md(t.correct)))
	} else {
		h.send(newMessage(req.chatID, mdf(t.sentenceWrong, out.Canonical)))
	}

	if out.Result != nil {
		h.send(newMessage(req.chatID, formatSentenceResult(t, out.Result)))
		h.showMainMenu(req.chatID, t)
	}
	return nil
}

// PresentSentenceRound sends a round scheduled after the post-answer delay.
func (h *Handler) PresentSentenceRound(chatID int64, round service.SentenceRound) {
	ctx := context.Background()
	t := h.locale(ctx, chatID)

	h.logger.Debug("presenting sentence round",
		zap.Int64("chat_id", chatID),
		zap.Stringer("session_id", round.SessionID),
		zap.Int("round", round.Number),
	)
	h.send(withKeyboard(newMessage(chatID, formatSentenceRound(t, round)), buildSentenceKeyboard(t)))
}

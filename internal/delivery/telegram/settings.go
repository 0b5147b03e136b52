package telegram

import (
	"context"
	"errors"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

func (h *Handler) showSettings(ctx context.Context, chatID int64) error {
	p, err := h.profiles.Get(ctx, chatID)
	if err != nil {
		return err
	}

	t := textsFor(p.NativeLanguage)
	h.chats.SetStep(chatID, entities.StepInSettings)
	h.send(withKeyboard(newMessage(chatID, formatSettings(t, p)), buildSettingsKeyboard(t)))
	return nil
}

func (h *Handler) onSettings(ctx context.Context, req request) error {
	p, err := h.profiles.Get(ctx, req.chatID)
	if err != nil {
		return err
	}
	t := textsFor(p.NativeLanguage)

	switch req.in.cmd {
	case cmdChangeNative:
		h.chats.SetStep(req.chatID, entities.StepAwaitingNewNativeLanguage)
		h.send(withKeyboard(
			newMessage(req.chatID, md(t.chooseNewNative)),
			replyKeyboard(
				[]string{languageLabels[entities.LanguageRussian], languageLabels[entities.LanguageChinese]},
				[]string{t.label(cmdBackToSettings)},
			),
		))
	case cmdChangeTarget:
		h.chats.SetStep(req.chatID, entities.StepAwaitingNewTargetLanguage)
		h.send(withKeyboard(
			newMessage(req.chatID, md(t.chooseTarget)),
			replyKeyboard(
				[]string{languageLabels[p.NativeLanguage.Complement()]},
				[]string{t.label(cmdBackToSettings)},
			),
		))
	case cmdChangeLevel:
		h.askLevel(req.chatID, t, entities.StepAwaitingNewLevel)
	case cmdSentenceRounds:
		h.chats.SetStep(req.chatID, entities.StepAwaitingSentenceRounds)
		h.send(withKeyboard(newMessage(req.chatID, md(t.chooseRounds)), buildRoundsKeyboard(t)))
	default:
		h.send(withKeyboard(newMessage(req.chatID, md(t.unknownCommand)), buildSettingsKeyboard(t)))
	}

	return nil
}

func (h *Handler) onNewNativeLanguage(ctx context.Context, req request) error {
	switch req.in.cmd {
	case cmdBackToSettings:
		return h.showSettings(ctx, req.chatID)
	case cmdLanguage:
	default:
		t := h.locale(ctx, req.chatID)
		h.send(newMessage(req.chatID, md(t.invalidLanguage)))
		return nil
	}

	p, err := h.profiles.ChangeNativeLanguage(ctx, req.chatID, req.in.lang)
	if err != nil {
		return err
	}

	t := textsFor(p.NativeLanguage)
	h.send(newMessage(req.chatID, mdf(t.nativeChanged, t.languageName(p.TargetLanguage))))
	return h.showSettings(ctx, req.chatID)
}

func (h *Handler) onNewTargetLanguage(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	switch req.in.cmd {
	case cmdBackToSettings:
		return h.showSettings(ctx, req.chatID)
	case cmdLanguage:
	default:
		h.send(newMessage(req.chatID, md(t.invalidLanguage)))
		return nil
	}

	p, err := h.profiles.SetTargetLanguage(ctx, req.chatID, req.in.lang)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLanguagePair) {
			h.send(newMessage(req.chatID, md(t.invalidLanguage)))
			return nil
		}
		return err
	}

	h.send(newMessage(req.chatID, mdf(t.targetChanged, t.languageName(p.TargetLanguage))))
	return h.showSettings(ctx, req.chatID)
}

func (h *Handler) onNewLevel(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	switch req.in.cmd {
	case cmdBackToSettings:
		return h.showSettings(ctx, req.chatID)
	case cmdLevel:
	default:
		h.send(newMessage(req.chatID, md(t.invalidLevel)))
		return nil
	}

	p, err := h.profiles.SetLevel(ctx, req.chatID, req.in.level)
	if err != nil {
		return err
	}

	h.send(newMessage(req.chatID, mdf(t.levelChanged, p.Level)))
	return h.showSettings(ctx, req.chatID)
}

func (h *Handler) onSentenceRounds(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	switch req.in.cmd {
	case cmdBackToSettings:
		return h.showSettings(ctx, req.chatID)
	case cmdNumber:
	default:
		h.send(withKeyboard(newMessage(req.chatID, md(t.invalidRounds)), buildRoundsKeyboard(t)))
		return nil
	}

	p, err := h.profiles.SetSentenceRounds(ctx, req.chatID, req.in.n)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRoundCount) {
			h.send(withKeyboard(newMessage(req.chatID, md(t.invalidRounds)), buildRoundsKeyboard(t)))
			return nil
		}
		return err
	}

	h.send(newMessage(req.chatID, mdf(t.roundsSaved, p.SentenceRounds)))
	return h.showSettings(ctx, req.chatID)
}

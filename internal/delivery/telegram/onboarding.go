package telegram

import (
	"context"
	"errors"

	"github.com/aliskhannn/language-teacher-bot/internal/domain/entities"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

// onStart registers the chat and either resumes onboarding or greets a
// returning user with the main menu. Any running game is dropped.
func (h *Handler) onStart(ctx context.Context, req request) error {
	var firstName, lastName string
	if req.from != nil {
		firstName, lastName = req.from.FirstName, req.from.LastName
	}

	h.chats.EndGames(req.chatID)

	p, _, err := h.profiles.Register(ctx, req.chatID, firstName, lastName)
	if err != nil {
		return err
	}

	switch {
	case !p.NativeLanguage.Valid():
		h.askNativeLanguage(req.chatID)
	case !p.TargetLanguage.Valid():
		h.askTargetLanguage(req.chatID, p.NativeLanguage)
	case !p.Level.Valid():
		h.askLevel(req.chatID, textsFor(p.NativeLanguage), entities.StepAwaitingLevel)
	default:
		t := textsFor(p.NativeLanguage)
		name := p.FirstName
		if name == "" {
			name = firstName
		}
		h.send(newMessage(req.chatID, mdf(t.welcomeBack, name)))
		h.showMainMenu(req.chatID, t)
	}

	return nil
}

func (h *Handler) askNativeLanguage(chatID int64) {
	h.chats.SetStep(chatID, entities.StepAwaitingNativeLanguage)
	h.send(withKeyboard(
		newMessage(chatID, md(chooseNativeText)),
		buildLanguageKeyboard(entities.Languages...),
	))
}

// askTargetLanguage offers only the language complementary to native.
func (h *Handler) askTargetLanguage(chatID int64, native entities.Language) {
	t := textsFor(native)
	h.chats.SetStep(chatID, entities.StepAwaitingTargetLanguage)
	h.send(withKeyboard(
		newMessage(chatID, md(t.chooseTarget)),
		buildLanguageKeyboard(native.Complement()),
	))
}

func (h *Handler) askLevel(chatID int64, t *texts, step entities.DialogStep) {
	h.chats.SetStep(chatID, step)

	kb := buildLevelKeyboard()
	if step == entities.StepAwaitingNewLevel {
		kb = buildLevelKeyboard([]string{t.label(cmdBackToSettings)})
	}
	h.send(withKeyboard(newMessage(chatID, md(t.chooseLevel)), kb))
}

func (h *Handler) onNativeLanguage(ctx context.Context, req request) error {
	if req.in.cmd != cmdLanguage {
		h.send(withKeyboard(
			newMessage(req.chatID, md(chooseNativeText)),
			buildLanguageKeyboard(entities.Languages...),
		))
		return nil
	}

	p, err := h.profiles.SetNativeLanguage(ctx, req.chatID, req.in.lang)
	if err != nil {
		return err
	}

	h.askTargetLanguage(req.chatID, p.NativeLanguage)
	return nil
}

func (h *Handler) onTargetLanguage(ctx context.Context, req request) error {
	p, err := h.profiles.Get(ctx, req.chatID)
	if err != nil {
		return err
	}
	t := textsFor(p.NativeLanguage)

	if req.in.cmd != cmdLanguage {
		h.send(withKeyboard(
			newMessage(req.chatID, md(t.invalidLanguage)),
			buildLanguageKeyboard(p.NativeLanguage.Complement()),
		))
		return nil
	}

	if _, err := h.profiles.SetTargetLanguage(ctx, req.chatID, req.in.lang); err != nil {
		if errors.Is(err, service.ErrInvalidLanguagePair) {
			h.send(withKeyboard(
				newMessage(req.chatID, md(t.invalidLanguage)),
				buildLanguageKeyboard(p.NativeLanguage.Complement()),
			))
			return nil
		}
		return err
	}

	h.askLevel(req.chatID, t, entities.StepAwaitingLevel)
	return nil
}

func (h *Handler) onLevel(ctx context.Context, req request) error {
	t := h.locale(ctx, req.chatID)

	if req.in.cmd != cmdLevel {
		h.send(withKeyboard(newMessage(req.chatID, md(t.invalidLevel)), buildLevelKeyboard()))
		return nil
	}

	p, err := h.profiles.SetLevel(ctx, req.chatID, req.in.level)
	if err != nil {
		return err
	}

	h.send(newMessage(req.chatID, mdf(t.levelSaved, p.Level)))
	h.showMainMenu(req.chatID, t)
	return nil
}

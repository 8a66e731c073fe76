package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	chatSessionRepo "tourdesk/database/repository/chatsession"
	"tourdesk/models"
	"tourdesk/utils"

	"go.uber.org/zap"
)

// Engine advances one phone's conversation per inbound message.
type Engine struct {
	Sessions chatSessionRepo.ChatSessionStore
	Catalog  PackageCatalog
	// Answerer is optional; unmatched FAQ questions get the static fallback without it.
	Answerer FAQAnswerer
	Brand    string
	Now      func() time.Time
}

func NewEngine(sessions chatSessionRepo.ChatSessionStore, catalog PackageCatalog, brand string) *Engine {
	return &Engine{Sessions: sessions, Catalog: catalog, Brand: brand, Now: time.Now}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) load(ctx context.Context, phone string) (*models.ChatSession, error) {
	session, err := e.Sessions.Get(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat session: %w", err)
	}
	if session != nil {
		return session, nil
	}
	now := e.now()
	session = &models.ChatSession{Phone: phone, State: models.StateGreeting, CreatedAt: now, UpdatedAt: now}
	if err := e.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return session, nil
}

// advance moves the session to next and commits it.
func (e *Engine) advance(ctx context.Context, session *models.ChatSession, next models.ChatState) error {
	session.State = next
	session.UpdatedAt = e.now()
	if err := e.Sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save chat session: %w", err)
	}
	return nil
}

// HandleMessage returns the reply for text sent by phone. Invalid input
// re-prompts without changing state; only storage failures return an error.
func (e *Engine) HandleMessage(ctx context.Context, phone, text string) (string, error) {
	logger := utils.GetLogger()
	text = strings.TrimSpace(text)

	session, err := e.load(ctx, phone)
	if err != nil {
		return "", err
	}
	logger.Debug("Chat turn", zap.String("phone", phone), zap.String("state", string(session.State)))

	switch strings.ToLower(text) {
	case "menu", "start":
		session.Data = models.ChatData{}
		if err := e.advance(ctx, session, models.StateGreeting); err != nil {
			return "", err
		}
		return greeting(e.Brand), nil
	}

	switch session.State {
	case models.StateGreeting:
		if err := e.advance(ctx, session, models.StateChooseIntent); err != nil {
			return "", err
		}
		return greeting(e.Brand), nil

	case models.StateChooseIntent:
		switch text {
		case "1":
			if err := e.advance(ctx, session, models.StateTravelDate); err != nil {
				return "", err
			}
			return askTravelDate(), nil
		case "2":
			if err := e.advance(ctx, session, models.StateFAQ); err != nil {
				return "", err
			}
			return faqIntro(), nil
		}
		return replyIntentInvalid, nil

	case models.StateFAQ:
		return e.handleFAQ(ctx, session, text)

	case models.StateTravelDate:
		date, ok := ParseTravelDate(text)
		if !ok {
			return replyDateInvalid, nil
		}
		session.Data.TravelDate = date
		if err := e.advance(ctx, session, models.StatePeopleCount); err != nil {
			return "", err
		}
		return replyAskPeople, nil

	case models.StatePeopleCount:
		party, ok := ParsePartyCount(text)
		if !ok {
			return replyPeopleInvalid, nil
		}
		session.Data.People = party
		if err := e.advance(ctx, session, models.StateBudget); err != nil {
			return "", err
		}
		return replyAskBudget, nil

	case models.StateBudget:
		budget, ok := ParseBudget(text)
		if !ok {
			return replyBudgetInvalid, nil
		}
		session.Data.Budget = budget
		if err := e.advance(ctx, session, models.StateCity); err != nil {
			return "", err
		}
		return replyAskCity, nil

	case models.StateCity:
		return e.handleCity(ctx, session, text)

	case models.StateShowPackage:
		if len(session.Data.Packages) == 0 {
			break
		}
		if err := e.advance(ctx, session, models.StatePackageSelect); err != nil {
			return "", err
		}
		return packageList(session.Data.Packages), nil

	case models.StatePackageSelect:
		idx, ok := ParseSelection(text, len(session.Data.Packages))
		if !ok {
			break
		}
		choice := session.Data.Packages[idx]
		session.Data.Selected = &choice
		if err := e.advance(ctx, session, models.StateFallback); err != nil {
			return "", err
		}
		logger.Info("Guest selected package",
			zap.String("phone", phone),
			zap.String("packageID", choice.ID),
			zap.String("travelDate", session.Data.TravelDate))
		return packageSelected(choice), nil
	}

	return fallback(), nil
}

func (e *Engine) handleFAQ(ctx context.Context, session *models.ChatSession, text string) (string, error) {
	q := strings.ToLower(text)
	switch {
	case strings.Contains(q, "price"):
		return replyFAQPrice, nil
	case strings.Contains(q, "pickup"):
		return replyFAQPickup, nil
	case strings.Contains(q, "payment"):
		return replyFAQPayment, nil
	case strings.Contains(q, "book"):
		if err := e.advance(ctx, session, models.StateTravelDate); err != nil {
			return "", err
		}
		return askTravelDate(), nil
	}

	if e.Answerer == nil || text == "" {
		return fallback(), nil
	}
	answer, err := e.Answerer.Answer(ctx, text)
	if err != nil {
		utils.GetLogger().Warn("FAQ answerer failed", zap.String("phone", session.Phone), zap.Error(err))
		return fallback(), nil
	}
	if answer == "" {
		return fallback(), nil
	}
	return answer, nil
}

func (e *Engine) handleCity(ctx context.Context, session *models.ChatSession, text string) (string, error) {
	options, err := e.Catalog.FindPackages(ctx, text, session.Data.Budget)
	if err != nil {
		return "", fmt.Errorf("failed to look up packages: %w", err)
	}
	if len(options) == 0 {
		if err := e.advance(ctx, session, models.StateFallback); err != nil {
			return "", err
		}
		return replyNoPackages, nil
	}

	session.Data.City = text
	session.Data.Packages = options
	session.Data.Selected = nil
	if err := e.advance(ctx, session, models.StatePackageSelect); err != nil {
		return "", err
	}
	return packageList(options), nil
}

// State reports the current state for phone, GREETING if it has never written.
func (e *Engine) State(ctx context.Context, phone string) (models.ChatState, error) {
	session, err := e.Sessions.Get(ctx, phone)
	if err != nil {
		return "", err
	}
	if session == nil {
		return models.StateGreeting, nil
	}
	return session.State, nil
}

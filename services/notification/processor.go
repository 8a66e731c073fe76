package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "tourdesk/database/repository/booking"
	packageRepo "tourdesk/database/repository/tourpackage"
	"tourdesk/models"
	"tourdesk/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Processor executes notification tasks on the worker side.
type Processor struct {
	Messenger Messenger
	Mailer    Mailer
	Bookings  bookingRepo.BookingRepository
	Packages  packageRepo.TourPackageRepository
	Now       func() time.Time
}

// Register wires every notification task type into mux.
func (p *Processor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeBookingConfirmed, p.HandleBookingConfirmed)
	mux.HandleFunc(TypeCompanyWelcome, p.HandleCompanyWelcome)
	mux.HandleFunc(TypeChatReply, p.HandleChatReply)
	mux.HandleFunc(TypeTripReminders, p.HandleTripReminders)
}

func decode(task *asynq.Task, v any) error {
	if err := json.Unmarshal(task.Payload(), v); err != nil {
		return fmt.Errorf("invalid %s payload: %w", task.Type(), err)
	}
	return nil
}

func (p *Processor) HandleBookingConfirmed(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()
	var payload models.BookingConfirmedPayload
	if err := decode(task, &payload); err != nil {
		logger.Error("booking confirmation: bad payload", zap.Error(err))
		return err
	}

	var firstErr error
	if err := p.Messenger.SendTemplate(ctx, payload.Phone, BookingConfirmedTemplate, BookingTemplateParams(payload)); err != nil {
		logger.Error("booking confirmation: whatsapp failed", zap.String("booking", payload.BookingID), zap.Error(err))
		firstErr = err
	}
	if payload.Email != "" {
		subject, body := BookingConfirmationEmail(payload)
		if err := p.Mailer.Send(ctx, payload.Email, subject, body); err != nil {
			logger.Error("booking confirmation: email failed", zap.String("booking", payload.BookingID), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (p *Processor) HandleCompanyWelcome(ctx context.Context, task *asynq.Task) error {
	var payload models.CompanyWelcomePayload
	if err := decode(task, &payload); err != nil {
		return err
	}
	subject, body := CompanyWelcomeEmail(payload)
	if err := p.Mailer.Send(ctx, payload.Email, subject, body); err != nil {
		utils.GetLogger().Error("company welcome: email failed", zap.String("email", payload.Email), zap.Error(err))
		return err
	}
	return nil
}

func (p *Processor) HandleChatReply(ctx context.Context, task *asynq.Task) error {
	var payload models.ChatReplyPayload
	if err := decode(task, &payload); err != nil {
		return err
	}
	if err := p.Messenger.SendText(ctx, payload.Phone, payload.Text); err != nil {
		utils.GetLogger().Error("chat reply: whatsapp failed", zap.String("phone", payload.Phone), zap.Error(err))
		return err
	}
	return nil
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// HandleTripReminders messages every guest travelling on the payload date,
// or tomorrow when the payload leaves it empty.
func (p *Processor) HandleTripReminders(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()
	var payload models.TripReminderPayload
	if err := decode(task, &payload); err != nil {
		return err
	}
	date := payload.Date
	if date == "" {
		date = p.now().AddDate(0, 0, 1).Format("2006-01-02")
	}

	bookings, err := p.Bookings.List(ctx, models.BookingFilter{TravelDate: date})
	if err != nil {
		return fmt.Errorf("trip reminders: %w", err)
	}

	titles := map[string]string{}
	sent, failed := 0, 0
	for _, b := range bookings {
		title, ok := titles[b.TourPackageID]
		if !ok {
			if pkg, err := p.Packages.GetByID(ctx, b.TourPackageID); err == nil && pkg != nil {
				title = pkg.Title
			}
			titles[b.TourPackageID] = title
		}
		to := utils.FormatPhone(b.CountryCode, b.Phone)
		if err := p.Messenger.SendText(ctx, to, TripReminderText(b, title)); err != nil {
			failed++
			logger.Warn("trip reminders: send failed", zap.String("booking", b.ID), zap.Error(err))
			continue
		}
		sent++
	}
	logger.Info("trip reminders: done", zap.String("date", date), zap.Int("sent", sent), zap.Int("failed", failed))
	return nil
}

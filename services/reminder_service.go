// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService sends appointment reminders for tomorrow's confirmed
// bookings over SMS and/or WhatsApp.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	logger *zap.Logger
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		logger: utils.GetLogger(),
	}
}

// StartScheduler runs the reminder job every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	s.logger.Info("Reminder scheduler started")
}

// SendDailyReminders notifies every customer with a confirmed booking
// tomorrow. Each attempt is recorded in reminder_logs.
func (s *ReminderService) SendDailyReminders() {
	s.logger.Info("Starting daily reminder processing")

	profile, err := s.loadProfile()
	if err != nil {
		s.logger.Error("Failed to load business profile", zap.Error(err))
		return
	}
	if !profile.AppointmentReminders {
		s.logger.Info("Appointment reminders are disabled, skipping")
		return
	}
	if !profile.SMSNotifications && !profile.WhatsAppNotifications {
		s.logger.Info("No notification channel enabled, skipping")
		return
	}

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var bookings []models.Booking
	if err := s.db.Preload("Customer").Preload("Service").Preload("Staff").
		Where("scheduled_date = ? AND status = ?", tomorrow, models.BookingConfirmed).
		Find(&bookings).Error; err != nil {
		s.logger.Error("Failed to fetch tomorrow's bookings", zap.Error(err))
		return
	}

	for _, booking := range bookings {
		// Skip bookings already reminded, reruns must not double-send
		var sent int64
		s.db.Model(&models.ReminderLog{}).
			Where("booking_id = ? AND status = ?", booking.ID, "sent").
			Count(&sent)
		if sent > 0 {
			continue
		}

		message := s.buildMessage(booking, profile.Name)

		if profile.SMSNotifications {
			s.deliver(booking, message, "sms")
		}
		if profile.WhatsAppNotifications {
			s.deliver(booking, message, "whatsapp")
		}
	}

	s.logger.Info("Daily reminder processing completed", zap.Int("bookings", len(bookings)))
}

func (s *ReminderService) loadProfile() (models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := s.db.First(&profile).Error
	return profile, err
}

func (s *ReminderService) buildMessage(booking models.Booking, businessName string) string {
	staffPart := ""
	if booking.Staff != nil {
		staffPart = " with " + booking.Staff.Name
	}
	return fmt.Sprintf("Hi %s, a reminder of your %s appointment%s tomorrow at %s. See you at %s!",
		booking.Customer.Name,
		booking.Service.Name,
		staffPart,
		booking.ScheduledTime,
		businessName,
	)
}

func (s *ReminderService) deliver(booking models.Booking, message, channel string) {
	to := strings.TrimSpace(booking.Customer.Phone)
	from := os.Getenv("TWILIO_PHONE_NUMBER")

	if channel == "whatsapp" {
		to = "whatsapp:" + to
		from = "whatsapp:" + from
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	entry := models.ReminderLog{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		Message:    message,
		Channel:    channel,
		SentAt:     time.Now(),
	}

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		s.logger.Error("Failed to send reminder",
			zap.String("bookingId", booking.ID.String()),
			zap.String("channel", channel),
			zap.Error(err),
		)
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
	} else {
		entry.Status = "sent"
	}

	if err := s.db.Create(&entry).Error; err != nil {
		s.logger.Error("Failed to record reminder log", zap.Error(err))
	}
}

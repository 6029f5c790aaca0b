// services/notification_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/BelskviK/Styler-sub001/models"
	"github.com/BelskviK/Styler-sub001/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotificationService sends next-day appointment reminders to customers over
// SMS or WhatsApp and records every send attempt.
type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotificationService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Appointment reminder scheduler started")
}

// SendDailyReminders notifies customers whose appointment is tomorrow.
// Cancelled and already-completed bookings are skipped.
func (s *NotificationService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	windowStart := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	windowEnd := windowStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.Where("scheduled_time >= ? AND scheduled_time < ? AND status IN ?",
		windowStart, windowEnd,
		[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch upcoming appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		s.sendReminder(appointment)
	}

	log.Println("Daily reminder processing completed")
}

func (s *NotificationService) sendReminder(appointment models.Appointment) {
	message := "Hi " + appointment.CustomerName + ", this is a reminder of your appointment tomorrow at " +
		appointment.ScheduledTime.Format("15:04") + ". See you soon!"

	// WhatsApp when the stored phone carries a '+' prefix, SMS otherwise
	channel := "sms"
	to := appointment.CustomerPhone
	if strings.HasPrefix(appointment.CustomerPhone, "+") {
		to = "whatsapp:" + appointment.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", appointment.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", appointment.CustomerPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", appointment.CustomerPhone)
	}

	notificationLog := models.NotificationLog{
		CompanyID:     appointment.CompanyID,
		AppointmentID: appointment.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&notificationLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appointment.ID, err)
	}
}

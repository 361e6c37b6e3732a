package notify

import (
	"fmt"
	"time"

	"booking-api/internal/mail"
)

// Presentation formatting lives here, apart from the booking and
// cancellation rules themselves.

const slotTimeFormat = "Monday, January 2 at 15:04"

func FormatSlot(t time.Time) string {
	return t.Format(slotTimeFormat)
}

func BookingNotificationContent(clientName string, slotStart time.Time) string {
	return fmt.Sprintf("New booking from %s for %s", clientName, FormatSlot(slotStart))
}

// RenderCancellationMail builds the message the worker delivers to the
// provider.
func RenderCancellationMail(job CancellationJob) mail.Message {
	return mail.Message{
		To:      job.ProviderEmail,
		ToName:  job.ProviderName,
		Subject: "Appointment canceled",
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour appointment with %s for %s has been canceled by the client.\nThe slot is open for booking again.\n",
			job.ProviderName, job.ClientName, FormatSlot(job.SlotStart),
		),
	}
}

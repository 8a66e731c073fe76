package notification

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"tourdesk/models"
)

// BookingConfirmedTemplate is the approved WhatsApp template name.
const BookingConfirmedTemplate = "booking_confirmed"

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// BookingTemplateParams binds the template's positional body parameters.
func BookingTemplateParams(p models.BookingConfirmedPayload) []string {
	return []string{
		p.GuestName,
		p.PackageTitle,
		p.TravelDate,
		orDash(p.TravelTime),
		orDash(p.Pickup),
		strconv.Itoa(p.Adults),
		strconv.Itoa(p.Kids),
		p.Total,
		p.Advance,
		p.Remaining,
	}
}

// BookingConfirmationText is the free-form version of the template.
func BookingConfirmationText(p models.BookingConfirmedPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s 👋\n\n", p.GuestName)
	b.WriteString("✅ *Your booking is confirmed!*\n\n")
	fmt.Fprintf(&b, "📍 Package: %s\n", p.PackageTitle)
	fmt.Fprintf(&b, "📅 Date: %s\n", p.TravelDate)
	fmt.Fprintf(&b, "⏰ Time: %s\n", orDash(p.TravelTime))
	fmt.Fprintf(&b, "📍 Pickup: %s\n\n", orDash(p.Pickup))
	fmt.Fprintf(&b, "💰 Total: %s\n", p.Total)
	fmt.Fprintf(&b, "💵 Advance: %s\n", p.Advance)
	fmt.Fprintf(&b, "💳 Remaining: %s\n\n", p.Remaining)
	b.WriteString("Thank you for booking with us 🙏")
	return b.String()
}

// BookingConfirmationEmail renders the HTML mail sent when the guest left an address.
func BookingConfirmationEmail(p models.BookingConfirmedPayload) (subject, body string) {
	subject = "Booking confirmed: " + p.PackageTitle
	rows := [][2]string{
		{"Package", p.PackageTitle},
		{"Date", p.TravelDate},
		{"Time", orDash(p.TravelTime)},
		{"Pickup", orDash(p.Pickup)},
		{"Guests", fmt.Sprintf("%d adults, %d kids", p.Adults, p.Kids)},
		{"Total", p.Total},
		{"Advance", p.Advance},
		{"Remaining", p.Remaining},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hello %s,</p><p>Your booking is confirmed.</p><table>", html.EscapeString(p.GuestName))
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr><th align=\"left\">%s</th><td>%s</td></tr>", r[0], html.EscapeString(r[1]))
	}
	b.WriteString("</table><p>Thank you for booking with us.</p>")
	return subject, b.String()
}

// CompanyWelcomeEmail renders the credentials mail for a new company login.
func CompanyWelcomeEmail(p models.CompanyWelcomePayload) (subject, body string) {
	subject = "Your company account has been created"
	body = fmt.Sprintf(
		"<p>Hello %s,</p>"+
			"<p>An account has been created for you.</p>"+
			"<p><strong>Email:</strong> %s<br><strong>Temporary password:</strong> %s</p>"+
			"<p>Sign in at <a href=\"%s\">%s</a> and change your password.</p>",
		html.EscapeString(p.CompanyName),
		html.EscapeString(p.Email),
		html.EscapeString(p.TempPassword),
		html.EscapeString(p.LoginURL),
		html.EscapeString(p.LoginURL),
	)
	return subject, body
}

// TripReminderText is sent the day before travel.
func TripReminderText(b models.ManualBooking, packageTitle string) string {
	return fmt.Sprintf(
		"Hello %s 👋\nA reminder that your tour *%s* is tomorrow (%s).\n⏰ Time: %s\n📍 Pickup: %s\nSee you soon!",
		b.GuestName, packageTitle, b.TravelDate, orDash(b.TravelTime), orDash(b.PickupLocation),
	)
}

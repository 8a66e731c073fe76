package chatbot

import (
	"fmt"
	"strconv"
	"strings"

	"tourdesk/models"
)

const (
	replyIntentInvalid = "❌ Please reply with 1 or 2."
	replyDateInvalid   = "❌ Please enter date as DD/MM/YYYY"
	replyAskPeople     = "How many people? (Adults Kids Infants)\nExample: 2 1 0"
	replyPeopleInvalid = "❌ Format: Adults Kids Infants (2 1 0)"
	replyAskBudget     = "What is your budget per person? 💰"
	replyBudgetInvalid = "❌ Enter valid budget number"
	replyAskCity       = "Which city? Abu Dhabi / Dubai / Al Ain / Fujairah / ALL"
	replyNoPackages    = "❌ No packages found. Our team will contact you."

	replyFAQPrice   = "💰 Prices start from AED 150 per person."
	replyFAQPickup  = "🚐 Pickup available from hotels & homes."
	replyFAQPayment = "💳 Cash, Card & UPI accepted."
)

func greeting(brand string) string {
	return "Hello 👋\n" +
		"Welcome to " + brand + " 🌍\n\n" +
		"How can I help you today?\n\n" +
		"1️⃣ Book a tour\n" +
		"2️⃣ Ask a question\n\n" +
		"Reply with 1 or 2"
}

func askTravelDate() string {
	return "Great! 🎉 Please enter your travel date 📅 (DD/MM/YYYY)"
}

func faqIntro() string {
	return "Sure 😊 You can ask about:\n" +
		"• Tour prices\n" +
		"• Available packages\n" +
		"• Pickup & drop\n" +
		"• Payment methods\n\n" +
		"Type your question or reply BOOK to start booking."
}

func fallback() string {
	return "Sorry, I didn’t understand that 🤖\n" +
		"Our team will assist you shortly."
}

func formatPrice(p models.PackageOption) string {
	currency := p.Currency
	if currency == "" {
		currency = "AED"
	}
	return currency + " " + strconv.FormatFloat(p.Price, 'f', -1, 64)
}

// packageList renders the numbered menu shown before PACKAGE_SELECT.
func packageList(options []models.PackageOption) string {
	var b strings.Builder
	b.WriteString("Available tours:\n")
	for i, p := range options {
		fmt.Fprintf(&b, "%d️⃣ %s – %s\n", i+1, p.Name, formatPrice(p))
	}
	b.WriteString("\nReply with package number.")
	return b.String()
}

func packageSelected(p models.PackageOption) string {
	return fmt.Sprintf("✅ You selected %s – %s.\nOur team will contact you shortly to confirm your booking.", p.Name, formatPrice(p))
}

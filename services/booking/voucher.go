package booking

import (
	"context"
	"fmt"
	"io"
	"time"

	"tourdesk/models"
	"tourdesk/utils"

	"github.com/phpdave11/gofpdf"
)

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// WriteVoucher renders a one-page PDF booking voucher.
func (s *DefaultBookingService) WriteVoucher(ctx context.Context, companyID, id string, w io.Writer) error {
	b, err := s.Get(ctx, companyID, id)
	if err != nil {
		return err
	}
	pkg, err := s.Packages.GetByID(ctx, b.TourPackageID)
	if err != nil {
		return fmt.Errorf("failed to load tour package: %w", err)
	}
	if pkg == nil {
		// Package was removed after booking; keep the voucher printable.
		pkg = &models.TourPackage{ID: b.TourPackageID, CompanyID: companyID, Title: "Tour package"}
	}
	companyName := ""
	if s.Companies != nil {
		if c, err := s.Companies.GetByID(ctx, companyID); err == nil && c != nil {
			companyName = c.CompanyName
		}
	}
	var driver *models.Driver
	if b.DriverID != "" {
		driver, _ = s.Drivers.GetByID(ctx, b.DriverID)
	}

	return renderVoucher(w, b, pkg, s.currencyFor(ctx, pkg), companyName, driver)
}

func renderVoucher(w io.Writer, b *models.ManualBooking, pkg *models.TourPackage, currency, companyName string, driver *models.Driver) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(10)
	if companyName != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, tr(companyName))
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Voucher No : "+b.ID)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issued     : "+time.Now().Format("02-01-2006 15:04"))
	pdf.Ln(10)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range rows {
			pdf.CellFormat(45, 7, r[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, tr(r[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	date := b.TravelDate
	if t, err := time.Parse(DateLayout, b.TravelDate); err == nil {
		date = t.Format("02-01-2006")
	}

	section("Guest", [][2]string{
		{"Name", b.GuestName},
		{"Phone", b.CountryCode + " " + b.Phone},
		{"Email", dash(b.Email)},
		{"Guests", fmt.Sprintf("%d adults, %d kids", b.Adults, b.Kids)},
	})
	trip := [][2]string{
		{"Package", pkg.Title},
		{"Date", date},
		{"Time", dash(b.TravelTime)},
		{"Pickup", dash(b.PickupLocation)},
	}
	if driver != nil {
		trip = append(trip, [2]string{"Driver", driver.Name + " (" + driver.VehicleNumber + ")"})
	}
	section("Trip", trip)
	section("Payment", [][2]string{
		{"Total", utils.FormatAmount(currency, b.TotalAmount)},
		{"Advance", utils.FormatAmount(currency, b.AdvanceAmount)},
		{"Remaining", utils.FormatAmount(currency, b.RemainingAmount)},
		{"Status", b.PaymentStatus.Label()},
	})

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Please present this voucher to your driver at pickup.", "", "", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render voucher: %w", err)
	}
	return nil
}

// controllers/receipt.go
package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

// BookingReceipt renders a PDF receipt for a booking
func BookingReceipt(c *gin.Context) {
	booking, ok := loadAccessibleBooking(c)
	if !ok {
		return
	}

	profile, err := getOrCreateProfile()
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to load business profile", err)
		return
	}

	pdf, err := buildReceiptPDF(booking, profile)
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to generate receipt", err)
		return
	}

	filename := fmt.Sprintf("receipt_%s.pdf", strings.Split(booking.ID.String(), "-")[0])
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func buildReceiptPDF(booking models.Booking, profile models.BusinessProfile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, profile.Name)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	if profile.Address != "" {
		pdf.Cell(0, 6, profile.Address)
		pdf.Ln(5)
	}
	if profile.Phone != "" {
		pdf.Cell(0, 6, profile.Phone)
		pdf.Ln(5)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Booking Receipt")
	pdf.Ln(10)

	staffName := "Any available staff"
	if booking.Staff != nil {
		staffName = booking.Staff.Name
	}

	rows := [][2]string{
		{"Booking ID", booking.ID.String()},
		{"Customer", booking.Customer.Name},
		{"Service", booking.Service.Name},
		{"Staff", staffName},
		{"Date", booking.ScheduledDate.Format("Monday, 2 January 2006")},
		{"Time", booking.ScheduledTime},
		{"Status", titleCase(booking.Status)},
		{"Price", fmt.Sprintf("%.2f", booking.Price)},
	}

	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(45, 7, row[0])
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 7, row[1])
		pdf.Ln(7)
	}

	if booking.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 7, "Notes")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, booking.Notes, "", "", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, "Generated "+time.Now().Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

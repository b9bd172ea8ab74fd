package dto

import (
	"github.com/parkgate-inc/parkgate/internal/domain/membership"
	"github.com/parkgate-inc/parkgate/internal/domain/parking"
	vehiclevo "github.com/parkgate-inc/parkgate/internal/domain/vehicle/valueobjects"
)

// ClassRevenue is the paid-session slice for one vehicle class.
type ClassRevenue struct {
	Count      int64 `json:"count"`
	TotalCents int64 `json:"total_cents"`
}

// MembershipSales is the membership slice of the window: how many were sold,
// split by class, and what they brought in.
type MembershipSales struct {
	Total       int64 `json:"total"`
	Cars        int64 `json:"cars"`
	Motorcycles int64 `json:"motorcycles"`

	TotalCents   int64 `json:"total_cents"`
	AverageCents int64 `json:"average_cents"`
}

// ResumeResult is the daily (or range) financial summary: revenue from paid
// sessions plus membership sales, all bounded by the business-day window.
// TotalCents covers paid sessions only; TotalRevenueCents adds the
// membership sale values on top.
type ResumeResult struct {
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`

	TotalCents        int64  `json:"total_cents"`
	SessionCount      int64  `json:"session_count"`
	AverageCents      int64  `json:"average_cents"`
	TotalRevenueCents int64  `json:"total_revenue_cents"`
	Currency          string `json:"currency"`

	Cars        ClassRevenue    `json:"cars"`
	Motorcycles ClassRevenue    `json:"motorcycles"`
	Memberships MembershipSales `json:"memberships"`
}

// NewResumeResult folds the repository aggregates into the API view.
func NewResumeResult(dateStart, dateEnd, currency string, paid *parking.PaidSummary, breakdown []parking.ClassAggregate, sales *membership.Summary) *ResumeResult {
	result := &ResumeResult{
		DateStart:         dateStart,
		DateEnd:           dateEnd,
		TotalCents:        paid.TotalCents,
		SessionCount:      paid.Count,
		AverageCents:      paid.AverageCents,
		TotalRevenueCents: paid.TotalCents,
		Currency:          currency,
	}

	for _, row := range breakdown {
		slice := ClassRevenue{Count: row.Count, TotalCents: row.TotalCents}
		switch vehiclevo.VehicleClass(row.Class) {
		case vehiclevo.VehicleClassMotorcycle:
			result.Motorcycles = slice
		default:
			result.Cars = slice
		}
	}

	if sales != nil {
		result.Memberships = MembershipSales{
			Total:        sales.Total,
			Cars:         sales.Cars,
			Motorcycles:  sales.Motorcycles,
			TotalCents:   sales.TotalCents,
			AverageCents: sales.AverageCents,
		}
		result.TotalRevenueCents += sales.TotalCents
	}

	return result
}

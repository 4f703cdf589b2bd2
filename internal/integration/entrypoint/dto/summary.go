// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneytrail/backend/internal/application/usecase/summary"
)

// SnapshotResponse represents the point-in-time financial aggregate.
type SnapshotResponse struct {
	Balance     int64 `json:"balance"`
	Investments int64 `json:"investments"`
	Settlement  int64 `json:"settlement"`
	NetWorth    int64 `json:"net_worth"`
}

// SeriesPointResponse represents one day in the balance time series.
type SeriesPointResponse struct {
	Date        string `json:"date"`
	Balance     int64  `json:"balance"`
	Investments int64  `json:"investments"`
	Settlement  int64  `json:"settlement"`
	NetWorth    int64  `json:"net_worth"`
}

// TimeSeriesResponse represents the response for the balance time series.
type TimeSeriesResponse struct {
	Points []SeriesPointResponse `json:"points"`
}

// MonthPointResponse represents one month in the monthly comparison.
type MonthPointResponse struct {
	Label    string `json:"label"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Balance  int64  `json:"balance"`
}

// MonthlyComparisonResponse represents the response for the monthly comparison.
type MonthlyComparisonResponse struct {
	Points []MonthPointResponse `json:"points"`
}

// TagTotalResponse represents one tag's expense total.
type TagTotalResponse struct {
	Tag   string `json:"tag"`
	Total int64  `json:"total"`
}

// CategoryBreakdownResponse represents the response for the per-tag breakdown.
type CategoryBreakdownResponse struct {
	Totals []TagTotalResponse `json:"totals"`
}

// ToSnapshotResponse converts a GetSnapshotOutput to a SnapshotResponse DTO.
func ToSnapshotResponse(output *summary.GetSnapshotOutput) SnapshotResponse {
	return SnapshotResponse{
		Balance:     output.Snapshot.Balance,
		Investments: output.Snapshot.Investments,
		Settlement:  output.Snapshot.Settlement,
		NetWorth:    output.Snapshot.NetWorth,
	}
}

// ToTimeSeriesResponse converts a GetTimeSeriesOutput to a TimeSeriesResponse DTO.
func ToTimeSeriesResponse(output *summary.GetTimeSeriesOutput) TimeSeriesResponse {
	points := make([]SeriesPointResponse, 0, len(output.Points))
	for _, point := range output.Points {
		points = append(points, SeriesPointResponse{
			Date:        point.Date.Format("2006-01-02"),
			Balance:     point.Balance,
			Investments: point.Investments,
			Settlement:  point.Settlement,
			NetWorth:    point.NetWorth,
		})
	}
	return TimeSeriesResponse{Points: points}
}

// ToMonthlyComparisonResponse converts a GetMonthlyComparisonOutput to its DTO.
func ToMonthlyComparisonResponse(output *summary.GetMonthlyComparisonOutput) MonthlyComparisonResponse {
	points := make([]MonthPointResponse, 0, len(output.Points))
	for _, point := range output.Points {
		points = append(points, MonthPointResponse{
			Label:    point.Label,
			Year:     point.Year,
			Month:    int(point.Month),
			Income:   point.Income,
			Expenses: point.Expenses,
			Balance:  point.Balance,
		})
	}
	return MonthlyComparisonResponse{Points: points}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to its DTO.
func ToCategoryBreakdownResponse(output *summary.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	totals := make([]TagTotalResponse, 0, len(output.Totals))
	for _, total := range output.Totals {
		totals = append(totals, TagTotalResponse{
			Tag:   total.Tag,
			Total: total.Total,
		})
	}
	return CategoryBreakdownResponse{Totals: totals}
}

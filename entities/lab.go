package entities

import "time"

// LabReading is one water-chemistry log: pH, EC and temperature recorded
// together. Append-only.
type LabReading struct {
	ReadingID uint      `gorm:"primaryKey" json:"reading_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Date      time.Time `json:"date"`
	PH        float64   `json:"ph"`
	EC        float64   `json:"ec"`
	TempC     float64   `json:"temp_c"`
	CreatedAt time.Time
}

// LabPoint is one dated value in a series.
type LabPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// LabSeries is the per-metric view consumed by charts and the notification
// engine. Ordered ascending by date.
type LabSeries struct {
	PH   []LabPoint `json:"ph"`
	EC   []LabPoint `json:"ec"`
	Temp []LabPoint `json:"temp"`
}

// SeriesFromReadings fans readings out into the three metric series.
func SeriesFromReadings(rs []LabReading) LabSeries {
	var out LabSeries
	for _, r := range rs {
		d := r.Date.Format("2006-01-02")
		out.PH = append(out.PH, LabPoint{Date: d, Value: r.PH})
		out.EC = append(out.EC, LabPoint{Date: d, Value: r.EC})
		out.Temp = append(out.Temp, LabPoint{Date: d, Value: r.TempC})
	}
	return out
}

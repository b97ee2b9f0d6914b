package model

// DashboardStats aggregates per-user counts. The four underlying queries are
// independent, so the numbers are not a consistent snapshot under concurrent
// writes.
type DashboardStats struct {
	TotalAppointments    int            `json:"total_appointments"`
	UpcomingAppointments int            `json:"upcoming_appointments"`
	TotalRecords         int            `json:"total_records"`
	RecentAppointments   []*Appointment `json:"recent_appointments"`
}

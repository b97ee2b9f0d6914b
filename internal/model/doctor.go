package model

// Doctor is a directory entry. The directory is seeded at startup and
// read-only; doctors are not owned by any user.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	ExperienceYears int      `json:"experience_years"`
	Rating          float64  `json:"rating"`
	ImageURL        string   `json:"image_url"`
	AvailableDays   []string `json:"available_days"`
	ConsultationFee float64  `json:"consultation_fee"`
	Bio             string   `json:"bio"`
}

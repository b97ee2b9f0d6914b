package doctor

import "github.com/vitalsync/portal-api/internal/model"

// seedDoctors builds the fixed directory the portal ships with.
func seedDoctors() []*model.Doctor {
	return []*model.Doctor{
		{
			ID:              "doc-001",
			Name:            "Dr. Sarah Mitchell",
			Specialty:       "General Medicine",
			ExperienceYears: 12,
			Rating:          4.9,
			ImageURL:        "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400",
			AvailableDays:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			ConsultationFee: 75.00,
			Bio:             "Board-certified physician with expertise in preventive care and chronic disease management.",
		},
		{
			ID:              "doc-002",
			Name:            "Dr. James Chen",
			Specialty:       "Cardiology",
			ExperienceYears: 15,
			Rating:          4.8,
			ImageURL:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
			AvailableDays:   []string{"Monday", "Wednesday", "Friday"},
			ConsultationFee: 150.00,
			Bio:             "Leading cardiologist specializing in heart health, prevention, and advanced cardiac care.",
		},
		{
			ID:              "doc-003",
			Name:            "Dr. Emily Rodriguez",
			Specialty:       "Dermatology",
			ExperienceYears: 8,
			Rating:          4.7,
			ImageURL:        "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=400",
			AvailableDays:   []string{"Tuesday", "Thursday", "Saturday"},
			ConsultationFee: 120.00,
			Bio:             "Specialist in skin conditions, cosmetic dermatology, and preventive skin care.",
		},
		{
			ID:              "doc-004",
			Name:            "Dr. Michael Thompson",
			Specialty:       "Orthopedics",
			ExperienceYears: 18,
			Rating:          4.9,
			ImageURL:        "https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=400",
			AvailableDays:   []string{"Monday", "Tuesday", "Thursday", "Friday"},
			ConsultationFee: 140.00,
			Bio:             "Expert orthopedic surgeon specializing in sports injuries and joint replacement.",
		},
		{
			ID:              "doc-005",
			Name:            "Dr. Lisa Patel",
			Specialty:       "Pediatrics",
			ExperienceYears: 10,
			Rating:          4.8,
			ImageURL:        "https://images.unsplash.com/photo-1651008376811-b90baee60c1f?w=400",
			AvailableDays:   []string{"Monday", "Wednesday", "Thursday", "Saturday"},
			ConsultationFee: 85.00,
			Bio:             "Compassionate pediatrician dedicated to children's health from infancy through adolescence.",
		},
		{
			ID:              "doc-006",
			Name:            "Dr. Robert Kim",
			Specialty:       "Neurology",
			ExperienceYears: 14,
			Rating:          4.7,
			ImageURL:        "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400",
			AvailableDays:   []string{"Tuesday", "Wednesday", "Friday"},
			ConsultationFee: 175.00,
			Bio:             "Neurologist with expertise in brain disorders, headaches, and neurological conditions.",
		},
	}
}

package doctor

import (
	"time"

	"github.com/google/uuid"

	"healthhive/models"
)

type seedEntry struct {
	name, specialty, qualification string
	experience                     int
	fee, rating                    float64
	opens, closes                  string
	about                          string
}

var roster = []seedEntry{
	{"Rajesh Kumar", "Cardiologist", "MBBS, DM (Cardiology)", 15, 1500, 4.6, "09:00 AM", "05:00 PM", "Experienced cardiologist specializing in heart diseases and preventive care."},
	{"Priya Sharma", "Pediatrician", "MBBS, MD (Pediatrics)", 12, 1200, 4.8, "08:00 AM", "04:00 PM", "Dedicated pediatrician with expertise in child healthcare and development."},
	{"Amit Patel", "Dermatologist", "MBBS, MD (Dermatology)", 10, 1400, 4.4, "10:00 AM", "06:00 PM", "Expert dermatologist specializing in skin conditions and cosmetic procedures."},
	{"Deepa Gupta", "Neurologist", "MBBS, DM (Neurology)", 14, 1600, 4.7, "12:00 PM", "08:00 PM", "Specialized in treating neurological disorders."},
	{"Suresh Verma", "Orthopedic", "MBBS, MS (Ortho)", 16, 1450, 4.5, "11:00 AM", "07:00 PM", "Musculoskeletal conditions and sports injuries."},
	{"Anjali Desai", "Psychiatrist", "MBBS, MD (Psychiatry)", 11, 1700, 4.9, "01:00 PM", "09:00 PM", "Mental health and cognitive behavioral therapy."},
	{"Vikram Singh", "ENT Specialist", "MBBS, MS (ENT)", 13, 1300, 4.3, "09:00 AM", "05:00 PM", "Ear, nose and throat conditions."},
	{"Meera Reddy", "Gynecologist", "MBBS, MD (Obstetrics & Gynecology)", 15, 1550, 4.8, "08:00 AM", "04:00 PM", "Women's health and reproductive medicine."},
	{"Arjun Nair", "Ophthalmologist", "MBBS, MS (Ophthalmology)", 12, 1350, 4.5, "10:00 AM", "06:00 PM", "Eye conditions and vision care."},
	{"Sunita Mehta", "Endocrinologist", "MBBS, DM (Endocrinology)", 14, 1650, 4.6, "12:00 PM", "08:00 PM", "Hormone-related conditions and diabetes care."},
}

// SeedID derives a stable doctor id from the name so re-seeding replaces instead of duplicating.
func SeedID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("healthhive/doctor/"+name)).String()
}

func everyDay(opens, closes string) []models.WeeklyScheduleEntry {
	o, c := models.MustParseTimeOfDay(opens), models.MustParseTimeOfDay(closes)
	entries := make([]models.WeeklyScheduleEntry, 0, len(models.Week))
	for _, day := range models.Week {
		entries = append(entries, models.WeeklyScheduleEntry{Day: day, OpenTime: o, CloseTime: c, IsOpen: true})
	}
	return entries
}

// SeedDoctors returns the clinic's starter roster.
func SeedDoctors(now time.Time) []models.Doctor {
	doctors := make([]models.Doctor, 0, len(roster))
	for _, e := range roster {
		doctors = append(doctors, models.Doctor{
			ID:              SeedID(e.name),
			Name:            e.name,
			Specialty:       e.specialty,
			Qualification:   e.qualification,
			Experience:      e.experience,
			Schedule:        everyDay(e.opens, e.closes),
			ConsultationFee: e.fee,
			Rating:          e.rating,
			About:           e.about,
			IsAvailable:     true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return doctors
}

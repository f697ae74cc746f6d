package models

import "time"

// WeeklyScheduleEntry is one day of a doctor's recurring week.
type WeeklyScheduleEntry struct {
	Day       DayOfWeek `bson:"day" json:"day"`
	OpenTime  TimeOfDay `bson:"openTime" json:"startTime"`
	CloseTime TimeOfDay `bson:"closeTime" json:"endTime"`
	IsOpen    bool      `bson:"isOpen" json:"isAvailable"`
}

// ScheduleException overrides the weekly entry for a single date (holiday, extra clinic).
type ScheduleException struct {
	Date      CalendarDate `bson:"date" json:"date"`
	IsOpen    bool         `bson:"isOpen" json:"isAvailable"`
	OpenTime  TimeOfDay    `bson:"openTime,omitempty" json:"startTime,omitempty"`
	CloseTime TimeOfDay    `bson:"closeTime,omitempty" json:"endTime,omitempty"`
	Reason    string       `bson:"reason,omitempty" json:"reason,omitempty"`
}

type Doctor struct {
	ID              string                `bson:"id" json:"id"`
	Name            string                `bson:"name" json:"name"`
	Specialty       string                `bson:"specialty" json:"specialty"`
	Qualification   string                `bson:"qualification" json:"qualification"`
	Experience      int                   `bson:"experience" json:"experience"` // years
	ProfileImage    string                `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Schedule        []WeeklyScheduleEntry `bson:"schedule" json:"schedule"`
	Exceptions      []ScheduleException   `bson:"exceptions,omitempty" json:"exceptions,omitempty"`
	ConsultationFee float64               `bson:"consultationFee" json:"consultationFee"`
	Rating          float64               `bson:"rating" json:"rating"` // 0..5
	About           string                `bson:"about,omitempty" json:"about,omitempty"`
	IsAvailable     bool                  `bson:"isAvailable" json:"isAvailable"` // false closes every day
	CreatedAt       time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleFor returns the weekly entry for day, if any.
func (d Doctor) ScheduleFor(day DayOfWeek) (WeeklyScheduleEntry, bool) {
	for _, entry := range d.Schedule {
		if entry.Day == day {
			return entry, true
		}
	}
	return WeeklyScheduleEntry{}, false
}

// ExceptionFor returns the date override for date, if any.
func (d Doctor) ExceptionFor(date CalendarDate) (ScheduleException, bool) {
	for _, ex := range d.Exceptions {
		if ex.Date == date {
			return ex, true
		}
	}
	return ScheduleException{}, false
}

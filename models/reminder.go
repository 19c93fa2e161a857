package models

// Reminder schedules a single medicine intake. Date is "YYYY-MM-DD" and
// ReminderTime is "HH:MM"; together they name the one minute the reminder
// is due at. IsTaken only ever moves from false to true.
type Reminder struct {
	ID           string `bson:"id" json:"id"`
	UserID       string `bson:"userId" json:"userId" binding:"required"`
	MedicineName string `bson:"medicineName" json:"medicineName" binding:"required"`
	Dosage       string `bson:"dosage,omitempty" json:"dosage,omitempty"`
	ReminderTime string `bson:"reminderTime" json:"reminderTime" binding:"required"`
	Date         string `bson:"date" json:"date" binding:"required"`
	IsTaken      bool   `bson:"isTaken" json:"isTaken"`
}
